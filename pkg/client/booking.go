package client

import (
	"context"
	"fmt"
	"net/http"

	"atlaz/pkg/model"
)

const bookingsPath = "/api/bookings"

// BookingClient talks to the bookings HTTP API.
type BookingClient struct {
	httpClient *HttpClient
}

func NewBookingClient(baseURL string) *BookingClient {
	return &BookingClient{
		httpClient: NewHttpClient(baseURL),
	}
}

func (c *BookingClient) HTTP() *HttpClient {
	return c.httpClient
}

func (c *BookingClient) Create(ctx context.Context, req model.BookingRequest) (*Response, error) {
	return c.httpClient.POST(ctx, bookingsPath, req)
}

func (c *BookingClient) CreateRaw(ctx context.Context, rawBody []byte) (*Response, error) {
	return c.httpClient.POSTRaw(ctx, bookingsPath, rawBody)
}

func (c *BookingClient) GetAll(ctx context.Context) (*Response, error) {
	return c.httpClient.GET(ctx, bookingsPath)
}

func (c *BookingClient) DecodeBooking(resp *Response) (*model.Booking, error) {
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected response: %s", resp)
	}

	var booking model.Booking
	if err := resp.DecodeJSON(&booking); err != nil {
		return nil, fmt.Errorf("could not decode booking json: %s: %w", resp, err)
	}
	return &booking, nil
}

func (c *BookingClient) DecodeBookings(resp *Response) ([]model.Booking, error) {
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected response: %s", resp)
	}

	var bookings []model.Booking
	if err := resp.DecodeJSON(&bookings); err != nil {
		return nil, fmt.Errorf("could not decode booking list: %s: %w", resp, err)
	}
	return bookings, nil
}
