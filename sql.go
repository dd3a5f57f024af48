package distid

import (
	"database/sql/driver"
	"fmt"
)

// database/sql/driver.Valuer and sql.Scanner implementations for the typed
// ID shapes. These are the two standard-library interfaces a raw *sql.DB
// needs to bind an ID column directly, without an ORM or query builder in
// between.

// Value implements driver.Valuer, storing u as its 32-character hex text
// form of the stored bytes (see the note on [UUID] for how that text sorts).
func (u UUID) Value() (driver.Value, error) { return u.String(), nil }

// Scan implements sql.Scanner, accepting a string, []byte, or nil.
func (u *UUID) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*u = NilUUID
		return nil
	case string:
		return u.UnmarshalText([]byte(v))
	case []byte:
		return u.UnmarshalText(v)
	default:
		return fmt.Errorf("distid: UUID.Scan: unsupported type %T", src)
	}
}

// Value implements driver.Valuer, storing d as its base-10 decimal text
// form (no SQL engine has a native 96-bit unsigned column type).
func (d DecimalPayload) Value() (driver.Value, error) { return d.DecimalString(), nil }

// Scan implements sql.Scanner, accepting a string, []byte, int64, or nil.
func (d *DecimalPayload) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = ZeroDecimalPayload
		return nil
	case string:
		return d.UnmarshalText([]byte(v))
	case []byte:
		return d.UnmarshalText(v)
	case int64:
		if v < 0 {
			return &InvalidDomainError{Value: fmt.Sprint(v), Reason: "negative"}
		}
		*d = NewDecimalPayloadFromUint64(uint64(v))
		return nil
	default:
		return fmt.Errorf("distid: DecimalPayload.Scan: unsupported type %T", src)
	}
}

// Value implements driver.Valuer. FluidID's top bit is always clear, so it
// always fits a SQL BIGINT column exactly.
func (f FluidID) Value() (driver.Value, error) { return int64(f), nil }

// Scan implements sql.Scanner, accepting an int64, string, []byte, or nil.
func (f *FluidID) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*f = 0
		return nil
	case int64:
		if v < 0 {
			return &InvalidDomainError{Value: fmt.Sprint(v), Reason: "negative"}
		}
		*f = FluidID(v)
		return nil
	case string:
		return f.UnmarshalText([]byte(v))
	case []byte:
		return f.UnmarshalText(v)
	default:
		return fmt.Errorf("distid: FluidID.Scan: unsupported type %T", src)
	}
}
