// Package client is the typed façade UI code talks to. It mirrors the
// HTTP surface one method per route and surfaces the server's error
// message on any non-2xx response.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"zoobackend/model"
	animalsvc "zoobackend/service/animal"
	bookingsvc "zoobackend/service/booking"
	"zoobackend/service/pricing"
	ticketsvc "zoobackend/service/ticket"
	"zoobackend/util/httpx"
)

// APIError carries the HTTP status and the server's "error" message, or a
// generic fallback when the body had none.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpx.Client()}
}

type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (c *Client) Health(ctx context.Context) (*Health, error) {
	var out Health
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- animals ---

func (c *Client) Animals(ctx context.Context) ([]model.Animal, error) {
	var out []model.Animal
	if err := c.do(ctx, http.MethodGet, "/api/animals", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Animal(ctx context.Context, id string) (*model.Animal, error) {
	var out model.Animal
	if err := c.do(ctx, http.MethodGet, "/api/animals/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateAnimal(ctx context.Context, req animalsvc.CreateReq) (*model.Animal, error) {
	var out model.Animal
	if err := c.do(ctx, http.MethodPost, "/api/animals", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateAnimal(ctx context.Context, id string, p animalsvc.Patch) (*model.Animal, error) {
	var out model.Animal
	if err := c.do(ctx, http.MethodPut, "/api/animals/"+id, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteAnimal(ctx context.Context, id string) (*model.Animal, error) {
	var out model.Animal
	if err := c.do(ctx, http.MethodDelete, "/api/animals/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- tickets ---

func (c *Client) Tickets(ctx context.Context) ([]model.TicketType, error) {
	var out []model.TicketType
	if err := c.do(ctx, http.MethodGet, "/api/tickets", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Ticket(ctx context.Context, id string) (*model.TicketType, error) {
	var out model.TicketType
	if err := c.do(ctx, http.MethodGet, "/api/tickets/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateTicket(ctx context.Context, req ticketsvc.CreateReq) (*model.TicketType, error) {
	var out model.TicketType
	if err := c.do(ctx, http.MethodPost, "/api/tickets", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTicket(ctx context.Context, id string, p ticketsvc.Patch) (*model.TicketType, error) {
	var out model.TicketType
	if err := c.do(ctx, http.MethodPut, "/api/tickets/"+id, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTicket(ctx context.Context, id string) (*model.TicketType, error) {
	var out model.TicketType
	if err := c.do(ctx, http.MethodDelete, "/api/tickets/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- bookings ---

func (c *Client) Bookings(ctx context.Context) ([]model.Booking, error) {
	var out []model.Booking
	if err := c.do(ctx, http.MethodGet, "/api/bookings", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Booking(ctx context.Context, id string) (*model.Booking, error) {
	var out model.Booking
	if err := c.do(ctx, http.MethodGet, "/api/bookings/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateBooking(ctx context.Context, req bookingsvc.CreateReq) (*model.Booking, error) {
	var out model.Booking
	if err := c.do(ctx, http.MethodPost, "/api/bookings", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBooking(ctx context.Context, id string, p bookingsvc.Patch) (*model.Booking, error) {
	var out model.Booking
	if err := c.do(ctx, http.MethodPut, "/api/bookings/"+id, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteBooking(ctx context.Context, id string) (*model.Booking, error) {
	var out model.Booking
	if err := c.do(ctx, http.MethodDelete, "/api/bookings/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Quote fetches the server-side price breakdown for a party; call it
// before CreateBooking and pass the total through.
func (c *Client) Quote(ctx context.Context, req pricing.QuoteReq) (*pricing.Breakdown, error) {
	var out pricing.Breakdown
	if err := c.do(ctx, http.MethodPost, "/api/bookings/quote", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- auth ---

type userEnvelope struct {
	User model.PublicUser `json:"user"`
}

func (c *Client) Register(ctx context.Context, req model.RegisterReq) (*model.PublicUser, error) {
	var out userEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) Login(ctx context.Context, req model.LoginReq) (*model.PublicUser, error) {
	var out userEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body *bytes.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode, Message: "request failed"}
		var e struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Error != "" {
			apiErr.Message = e.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
