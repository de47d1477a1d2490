// Package client provides the Client reference entity. Clients are
// pass-through records: field validation only, no lifecycle. The postal
// code doubles as the capacity-limiting zone for deliveries.
package client

import (
	"errors"
	"fmt"

	"gescom/internal/core/domain/model/kernel"
	"gescom/internal/pkg/errs"
)

// ErrClientIsNotConstructed is returned when a Client instance was not
// created through NewClient or RestoreClient.
var ErrClientIsNotConstructed = errors.New("Client must be created via NewClient or RestoreClient")

// Client is a customer record identified by a server-assigned serial.
type Client struct {
	// no is the server-assigned serial; zero until first persisted.
	no int64

	name       string
	firstName  string
	address    string
	city       string
	postalCode int
	phone      kernel.Phone
	email      kernel.Email

	isConstructed bool
}

// NewClient creates a client record. Phone and email are validated value
// objects; the serial stays zero until the repository persists the record.
func NewClient(
	name, firstName, address, city string,
	postalCode int,
	phone kernel.Phone,
	email kernel.Email,
) (*Client, error) {
	c := &Client{
		firstName:     firstName,
		address:       address,
		city:          city,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setName(name),
		c.setPostalCode(postalCode),
		c.setPhone(phone),
		c.setEmail(email),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreClient rehydrates a client from persistence.
func RestoreClient(
	no int64,
	name, firstName, address, city string,
	postalCode int,
	phone kernel.Phone,
	email kernel.Email,
) (*Client, error) {
	if no <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"client number", fmt.Errorf("%d is not a persisted serial", no))
	}

	c, err := NewClient(name, firstName, address, city, postalCode, phone, email)
	if err != nil {
		return nil, err
	}

	c.no = no
	return c, nil
}

// Validate ensures the instance came from a constructor.
func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

func (c *Client) No() int64           { return c.no }
func (c *Client) Name() string        { return c.name }
func (c *Client) FirstName() string   { return c.firstName }
func (c *Client) Address() string     { return c.address }
func (c *Client) City() string        { return c.city }
func (c *Client) PostalCode() int     { return c.postalCode }
func (c *Client) Phone() kernel.Phone { return c.phone }
func (c *Client) Email() kernel.Email { return c.email }

// AssignNo records the database serial after the first insert.
func (c *Client) AssignNo(no int64) error {
	if no <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"client number", fmt.Errorf("%d is not a persisted serial", no))
	}
	if c.no != 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"client number", fmt.Errorf("client %d already has a number", c.no))
	}
	c.no = no
	return nil
}

func (c *Client) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("client name")
	}
	c.name = name
	return nil
}

func (c *Client) setPostalCode(postalCode int) error {
	if postalCode <= 0 {
		return errs.NewValueIsRequiredError("postal code")
	}
	c.postalCode = postalCode
	return nil
}

func (c *Client) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	c.phone = phone
	return nil
}

func (c *Client) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	c.email = email
	return nil
}
