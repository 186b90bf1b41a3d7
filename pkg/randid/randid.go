package randid

import (
	"crypto/rand"
	"fmt"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// String returns n random alphanumeric characters from crypto/rand.
func String(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		panic(fmt.Sprintf("randid: %v", err))
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf)
}

// TransactionID generates an order id of the form TRX-XXXX-XXXXXXXX.
func TransactionID() string {
	return fmt.Sprintf("TRX-%s-%s", String(4), String(8))
}

// TransactionItemID generates a line-item id of the form TRX-ITEM-XXXXXXXXXX.
func TransactionItemID() string {
	return fmt.Sprintf("TRX-ITEM-%s", String(10))
}
