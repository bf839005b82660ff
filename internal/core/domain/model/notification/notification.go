package notification

import (
	"errors"
	"maps"
	"strings"
	"time"
	"unicode/utf8"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

const maxTitleLength = 255

var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification or RestoreNotification constructor")

// Metadata is free-form context attached to a notification, e.g. the order it refers to.
type Metadata map[string]any

// Notification is a message addressed to one user. It is created unread and only
// its read flag ever changes.
type Notification struct {
	id     kernel.UUID
	userID kernel.UUID

	title    string
	message  string
	typ      Type
	metadata Metadata

	read      bool
	createdAt time.Time

	isConstructed bool
}

func NewNotification(id, userID kernel.UUID, title, message string, typ Type, metadata Metadata) (*Notification, error) {
	return RestoreNotification(id, userID, title, message, typ, metadata, false, time.Now().UTC())
}

func RestoreNotification(
	id, userID kernel.UUID,
	title, message string,
	typ Type,
	metadata Metadata,
	read bool,
	createdAt time.Time,
) (*Notification, error) {
	n := &Notification{
		metadata:      maps.Clone(metadata),
		read:          read,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		n.setID(id),
		n.setUserID(userID),
		n.setTitle(title),
		n.setMessage(message),
		n.setType(typ),
	); err != nil {
		return nil, err
	}

	return n, nil
}

func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

func (n *Notification) ID() kernel.UUID {
	return n.id
}

func (n *Notification) UserID() kernel.UUID {
	return n.userID
}

func (n *Notification) Title() string {
	return n.title
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) Type() Type {
	return n.typ
}

// Metadata returns a copy; nil when the notification carries none.
func (n *Notification) Metadata() Metadata {
	return maps.Clone(n.metadata)
}

func (n *Notification) IsRead() bool {
	return n.read
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// BelongsTo reports whether the notification is addressed to userID.
func (n *Notification) BelongsTo(userID kernel.UUID) bool {
	return n.userID.IsEqual(userID)
}

// MarkAsRead is idempotent.
func (n *Notification) MarkAsRead() {
	n.read = true
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userID", err)
	}
	n.userID = id
	return nil
}

func (n *Notification) setTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errs.NewValueIsRequiredError("title")
	}
	if l := utf8.RuneCountInString(title); l > maxTitleLength {
		return errs.NewValueIsOutOfRangeError("title length", l, 1, maxTitleLength)
	}
	n.title = title
	return nil
}

func (n *Notification) setMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return errs.NewValueIsRequiredError("message")
	}
	n.message = message
	return nil
}

func (n *Notification) setType(typ Type) error {
	if err := typ.Validate(); err != nil {
		return err
	}
	n.typ = typ
	return nil
}
