package types

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// ID is an opaque record identifier.
// The API may send ids as JSON strings or numbers; both decode to the same text.
type ID string

// UnmarshalJSON accepts a JSON string, number, or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// String returns the id text.
func (id ID) String() string {
	return string(id)
}

// Date is an optional timestamp sent by the API.
// A zero Date means the record carried no usable date.
type Date struct {
	time.Time
}

// dateLayouts are tried in order when decoding string dates.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// UnmarshalJSON accepts RFC 3339 strings, bare dates, millisecond epochs, or null.
// Values that cannot be parsed leave the date empty instead of failing the whole record.
func (d *Date) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	d.Time = time.Time{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				d.Time = t
				return nil
			}
		}
		return nil
	}
	if ms, err := strconv.ParseInt(string(data), 10, 64); err == nil {
		d.Time = time.UnixMilli(ms).UTC()
	}
	return nil
}

// MarshalJSON writes the date as RFC 3339, or null when empty.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.Format(time.RFC3339))
}

// OrNow returns the date, or now when the record had none.
func (d Date) OrNow(now time.Time) time.Time {
	if d.IsZero() {
		return now
	}
	return d.Time
}

// Project is a portfolio entry shown on the public site and managed in the admin panel.
type Project struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	Category    string `json:"category,omitempty"`
	Location    string `json:"location,omitempty"`
}

// Client is a customer testimonial.
type Client struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// Contact is a contact-form submission.
type Contact struct {
	ID       ID     `json:"id,omitempty"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	City     string `json:"city"`
	Date     Date   `json:"date"`
}

// Subscriber is a newsletter subscription.
type Subscriber struct {
	ID    ID     `json:"id,omitempty"`
	Email string `json:"email"`
	Date  Date   `json:"date"`
}

// Activity is one entry of the admin dashboard feed.
// Icon is a Font Awesome class name such as "fa-user-plus".
type Activity struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"`
}
