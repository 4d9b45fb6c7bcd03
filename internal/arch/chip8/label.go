package chip8

import "fmt"

// AddressLabel returns the label name for an absolute address.
func AddressLabel(address uint16) string {
	return fmt.Sprintf("@addr_%x", address)
}
