// Package hidsink ships assembled keyboard reports to an Android Open
// Accessory 2.0 host over USB: it registers only the boot-keyboard
// descriptor (spec.md §6) and exposes firmware.Sink to any AOA2-capable
// phone.
//
// Protocol reference: https://source.android.com/docs/core/interaction/accessories/aoa2
package hidsink

import (
	"fmt"
	"time"

	"github.com/google/gousb"

	"github.com/gokeyb/gokeyb/keycode"
)

const (
	// AccessoryVendorID and the two product IDs below are what a phone
	// enumerates as once it has already switched into AOA2 accessory
	// mode (with or without the simultaneous ADB interface).
	AccessoryVendorID     = 0x18d1
	AccessoryProductID    = 0x2d00
	AccessoryADBProductID = 0x2d01

	reqRegisterHID   = 54 // ACCESSORY_REGISTER_HID
	reqUnregisterHID = 55 // ACCESSORY_UNREGISTER_HID
	reqSetHIDDesc    = 56 // ACCESSORY_SET_HID_REPORT_DESC
	reqSendHIDEvent  = 57 // ACCESSORY_SEND_HID_EVENT

	// host-to-device (0x00) | vendor (0x40) | device recipient (0x00)
	bmRequestTypeOut = 0x40

	hidID = 1 // the only descriptor this sink ever registers
)

// keyboardDescriptor is the 8-byte boot-keyboard HID report descriptor
// spec.md §6 mandates: [modifier, reserved, key1..key6].
var keyboardDescriptor = []byte{
	0x05, 0x01, //   Usage Page (Generic Desktop)
	0x09, 0x06, //   Usage (Keyboard)
	0xA1, 0x01, //   Collection (Application)
	0x05, 0x07, //     Usage Page (Keyboard/Keypad)
	0x19, 0xE0, //     Usage Minimum (Left Control)
	0x29, 0xE7, //     Usage Maximum (Right GUI)
	0x15, 0x00, //     Logical Minimum (0)
	0x25, 0x01, //     Logical Maximum (1)
	0x75, 0x01, //     Report Size (1)
	0x95, 0x08, //     Report Count (8)
	0x81, 0x02, //     Input (Data, Variable, Absolute) -- modifier byte
	0x95, 0x01, //     Report Count (1)
	0x75, 0x08, //     Report Size (8)
	0x81, 0x01, //     Input (Constant) -- reserved byte
	0x95, 0x06, //     Report Count (6)
	0x75, 0x08, //     Report Size (8)
	0x15, 0x00, //     Logical Minimum (0)
	0x26, 0xFF, 0x00, // Logical Maximum (255)
	0x05, 0x07, //     Usage Page (Keyboard/Keypad)
	0x19, 0x00, //     Usage Minimum (0)
	0x29, 0xFF, //     Usage Maximum (255)
	0x81, 0x00, //     Input (Data, Array) -- key array
	0xC0, // End Collection
}

// Device wraps a libusb handle to an AOA2 host with the keyboard HID
// descriptor registered.
type Device struct {
	ctx *gousb.Context
	dev *gousb.Device
}

// Open finds a connected AOA2 accessory and registers the keyboard
// descriptor on it. serial, when non-empty, narrows the search to a
// single device's serial number.
func Open(serial string) (*Device, error) {
	ctx := gousb.NewContext()

	devs, err := ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		if desc.Vendor != AccessoryVendorID {
			return false
		}
		return desc.Product == AccessoryProductID || desc.Product == AccessoryADBProductID
	})
	if err != nil && len(devs) == 0 {
		ctx.Close()
		return nil, fmt.Errorf("no AOA2 accessory found: %w", err)
	}

	var dev *gousb.Device
	for _, d := range devs {
		s, _ := d.SerialNumber()
		if dev == nil && (serial == "" || s == serial) {
			dev = d
			continue
		}
		d.Close()
	}
	if dev == nil {
		ctx.Close()
		return nil, fmt.Errorf("AOA2 accessory with serial %q not found", serial)
	}

	dev.SetAutoDetach(true)

	d := &Device{ctx: ctx, dev: dev}
	if err := d.register(); err != nil {
		dev.Close()
		ctx.Close()
		return nil, err
	}
	return d, nil
}

// register sends ACCESSORY_REGISTER_HID + ACCESSORY_SET_HID_REPORT_DESC
// for the keyboard descriptor.
func (d *Device) register() error {
	if err := d.controlTransfer(reqRegisterHID, hidID, uint16(len(keyboardDescriptor)), nil); err != nil {
		return fmt.Errorf("REGISTER_HID: %w", err)
	}
	if err := d.controlTransfer(reqSetHIDDesc, hidID, 0, keyboardDescriptor); err != nil {
		_ = d.controlTransfer(reqUnregisterHID, hidID, 0, nil)
		return fmt.Errorf("SET_HID_REPORT_DESC: %w", err)
	}
	time.Sleep(300 * time.Millisecond) // let Android create the input device
	return nil
}

// Send implements firmware.Sink: it ships one 8-byte boot report.
func (d *Device) Send(report keycode.Report) error {
	return d.controlTransfer(reqSendHIDEvent, hidID, 0, report.Bytes())
}

// Ping checks the device is still reachable by reading its serial number.
func (d *Device) Ping() error {
	_, err := d.dev.SerialNumber()
	return err
}

// Close unregisters the descriptor and releases USB resources.
func (d *Device) Close() error {
	_ = d.controlTransfer(reqUnregisterHID, hidID, 0, nil)
	d.dev.Close()
	d.ctx.Close()
	return nil
}

func (d *Device) controlTransfer(bRequest uint8, wValue, wIndex uint16, data []byte) error {
	if data == nil {
		data = []byte{}
	}
	_, err := d.dev.Control(bmRequestTypeOut, bRequest, wValue, wIndex, data)
	if err != nil {
		return fmt.Errorf("control transfer (req=%d wValue=%d wIndex=%d): %w", bRequest, wValue, wIndex, err)
	}
	return nil
}
