// Package kmsg writes single-line test messages to the kernel log
// device. The whole contract is: open the device, write one line
// (optionally prefixed with a bracketed numeric priority), close.
package kmsg

import (
	"fmt"
	"os"
)

// DefaultDevice is the kernel message device.
const DefaultDevice = "/dev/kmsg"

// Write writes msg to the default kernel log device. A non-negative
// priority is written as a "<N>" prefix; a negative priority omits the
// prefix and lets the kernel apply its default.
func Write(priority int, msg string) error {
	return WriteDevice(DefaultDevice, priority, msg)
}

// WriteDevice is Write against an explicit device path.
// The device is closed on every return path.
func WriteDevice(device string, priority int, msg string) error {
	f, err := os.OpenFile(device, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("opening %s: %w", device, err)
	}
	defer func() { _ = f.Close() }()

	prefix := ""
	if priority >= 0 {
		prefix = fmt.Sprintf("<%d>", priority)
	}
	if _, err := fmt.Fprintf(f, "%s%s\n", prefix, msg); err != nil {
		return fmt.Errorf("writing %s: %w", device, err)
	}
	return nil
}
