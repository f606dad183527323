package catalog

import (
	"bytes"
	"fmt"
	"time"
)

/* BookInstance is a physical copy of a Book
 * Book holds the id of the copied title
 */
type BookInstance struct {
	ID      string
	Book    string
	Imprint string
	Status  InstanceStatus
	DueBack time.Time
}

func (i BookInstance) URL() string {
	return "/catalog/bookinstance/" + i.ID
}

// DueBackFormatted renders the due date the way the views show it
func (i BookInstance) DueBackFormatted() string {
	if i.DueBack.IsZero() {
		return ""
	}
	return i.DueBack.Format("Jan 2, 2006")
}

// InstanceStatus is the availability of a copy
type InstanceStatus int

const (
	Maintenance InstanceStatus = iota + 1
	Available
	Loaned
	Reserved
)

func (s InstanceStatus) String() string {
	switch s {
	case Maintenance:
		return "Maintenance"
	case Available:
		return "Available"
	case Loaned:
		return "Loaned"
	case Reserved:
		return "Reserved"
	}
	return "Unknown"
}

// NewInstanceStatus parses a status name. Unknown names fall back to Maintenance.
func NewInstanceStatus(s string) InstanceStatus {
	switch s {
	case "Available":
		return Available
	case "Loaned":
		return Loaned
	case "Reserved":
		return Reserved
	}
	return Maintenance
}

// Validate checks if the status is one of the known values
func (s InstanceStatus) Validate() error {
	if s < Maintenance || s > Reserved {
		return fmt.Errorf("invalid instance status: %d", s)
	}
	return nil
}

func (s InstanceStatus) MarshalJSON() ([]byte, error) {
	buffer := bytes.NewBufferString(`"`)
	buffer.WriteString(s.String())
	buffer.WriteString(`"`)
	return buffer.Bytes(), nil
}
