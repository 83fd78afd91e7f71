package models

import (
	"errors"
	"testing"
)

func TestConfirmPayment(t *testing.T) {
	cases := []struct {
		name          string
		status        EnrollmentStatus
		paymentStatus PaymentStatus
		wantErr       error
	}{
		{name: "pending", status: EnrollmentPending, paymentStatus: PaymentPending},
		{name: "cancelled can be revived", status: EnrollmentCancelled, paymentStatus: PaymentFailed},
		{name: "already active", status: EnrollmentActive, paymentStatus: PaymentPaid, wantErr: ErrPaymentAlreadyConfirmed},
		{name: "already completed", status: EnrollmentCompleted, paymentStatus: PaymentPaid, wantErr: ErrPaymentAlreadyConfirmed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := Enrollment{Status: tc.status, PaymentStatus: tc.paymentStatus}
			err := e.ConfirmPayment("stripe-demo", "stripe-demo-T1")
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("ConfirmPayment() error = %v, want %v", err, tc.wantErr)
			}
			if tc.wantErr != nil {
				if e.Status != tc.status || e.PaymentStatus != tc.paymentStatus {
					t.Errorf("rejected transition mutated state: %s/%s", e.Status, e.PaymentStatus)
				}
				return
			}
			if e.Status != EnrollmentActive || e.PaymentStatus != PaymentPaid {
				t.Errorf("expected ACTIVE/PAID, got %s/%s", e.Status, e.PaymentStatus)
			}
			if e.PaymentReference == nil || *e.PaymentReference != "stripe-demo-T1" {
				t.Errorf("unexpected reference: %v", e.PaymentReference)
			}
			if e.PaymentMethod == nil || *e.PaymentMethod != "stripe-demo" {
				t.Errorf("unexpected method: %v", e.PaymentMethod)
			}
		})
	}
}

func TestCancel(t *testing.T) {
	cases := []struct {
		name          string
		status        EnrollmentStatus
		paymentStatus PaymentStatus
		wantErr       error
	}{
		{name: "pending pending", status: EnrollmentPending, paymentStatus: PaymentPending},
		{name: "active", status: EnrollmentActive, paymentStatus: PaymentPaid, wantErr: ErrEnrollmentNotCancelable},
		{name: "completed", status: EnrollmentCompleted, paymentStatus: PaymentPaid, wantErr: ErrEnrollmentNotCancelable},
		{name: "second cancel", status: EnrollmentCancelled, paymentStatus: PaymentFailed, wantErr: ErrEnrollmentNotCancelable},
		{name: "pending but paid", status: EnrollmentPending, paymentStatus: PaymentPaid, wantErr: ErrEnrollmentNotCancelable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := Enrollment{Status: tc.status, PaymentStatus: tc.paymentStatus}
			err := e.Cancel()
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Cancel() error = %v, want %v", err, tc.wantErr)
			}
			if tc.wantErr != nil {
				if e.Status != tc.status || e.PaymentStatus != tc.paymentStatus {
					t.Errorf("rejected transition mutated state: %s/%s", e.Status, e.PaymentStatus)
				}
				return
			}
			if e.Status != EnrollmentCancelled || e.PaymentStatus != PaymentFailed {
				t.Errorf("expected CANCELLED/FAILED, got %s/%s", e.Status, e.PaymentStatus)
			}
		})
	}
}

func TestSettled(t *testing.T) {
	if EnrollmentPending.Settled() || EnrollmentCancelled.Settled() {
		t.Error("PENDING and CANCELLED must not count as settled")
	}
	if !EnrollmentActive.Settled() || !EnrollmentCompleted.Settled() {
		t.Error("ACTIVE and COMPLETED must count as settled")
	}
}
