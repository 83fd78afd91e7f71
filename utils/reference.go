package utils

import (
	"fmt"
	"time"
)

// PaymentReference builds the reference stored on a paid enrollment. The
// transaction id comes from the (demo) gateway; when absent, a timestamped
// placeholder is generated instead.
func PaymentReference(method, transactionID string) string {
	if transactionID == "" {
		transactionID = fmt.Sprintf("DEMO-%d", time.Now().UnixMilli())
	}
	if method == "" {
		return transactionID
	}
	return method + "-" + transactionID
}
