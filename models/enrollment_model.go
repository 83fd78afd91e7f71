package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnrollmentStatus string

const (
	EnrollmentPending   EnrollmentStatus = "PENDING"
	EnrollmentActive    EnrollmentStatus = "ACTIVE"
	EnrollmentCompleted EnrollmentStatus = "COMPLETED"
	EnrollmentCancelled EnrollmentStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentNotRequired PaymentStatus = "NOT_REQUIRED"
	PaymentPending     PaymentStatus = "PENDING"
	PaymentPaid        PaymentStatus = "PAID"
	PaymentFailed      PaymentStatus = "FAILED"
)

// Transition errors; handlers translate these into 409 responses.
var (
	ErrPaymentAlreadyConfirmed = errors.New("payment already confirmed for this enrollment")
	ErrEnrollmentNotCancelable = errors.New("only pending enrollments can be cancelled")
)

type Enrollment struct {
	ID               uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	UserID           uuid.UUID        `gorm:"type:uuid;not null;index" json:"userId"`
	CourseID         uuid.UUID        `gorm:"type:uuid;not null;index" json:"courseId"`
	Status           EnrollmentStatus `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	PaymentStatus    PaymentStatus    `gorm:"size:20;not null;default:'PENDING'" json:"paymentStatus"`
	PaymentMethod    *string          `gorm:"size:50" json:"paymentMethod"`
	PaymentReference *string          `gorm:"size:255" json:"paymentReference"`

	User   *User   `gorm:"foreignkey:UserID" json:"-"`
	Course *Course `gorm:"foreignkey:CourseID" json:"course,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (e *Enrollment) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Settled reports whether the enrollment already counts as enrolled.
func (s EnrollmentStatus) Settled() bool {
	return s == EnrollmentActive || s == EnrollmentCompleted
}

// ConfirmPayment moves the enrollment to ACTIVE/PAID with the given
// reference. The transition is only legal while the enrollment is not yet
// settled.
func (e *Enrollment) ConfirmPayment(method, reference string) error {
	if e.Status.Settled() {
		return ErrPaymentAlreadyConfirmed
	}
	e.Status = EnrollmentActive
	e.PaymentStatus = PaymentPaid
	if method != "" {
		e.PaymentMethod = &method
	}
	e.PaymentReference = &reference
	return nil
}

// Cancel moves a PENDING/PENDING enrollment to CANCELLED/FAILED. Any other
// starting state is rejected, including a second cancel.
func (e *Enrollment) Cancel() error {
	if e.Status != EnrollmentPending || e.PaymentStatus != PaymentPending {
		return ErrEnrollmentNotCancelable
	}
	e.Status = EnrollmentCancelled
	e.PaymentStatus = PaymentFailed
	return nil
}
