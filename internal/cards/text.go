package cards

import (
	"bytes"
	"fmt"
)

// GenerateText renders the boarding card as plain text.
func GenerateText(fields map[string]string) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "%s\n\n", fields["airline"])
	fmt.Fprintf(&buf, "%s (%s) to %s (%s)\n\n",
		fields["embarkation_name"], fields["embarkation"],
		fields["destination_name"], fields["destination"])
	fmt.Fprintf(&buf, "Passenger : %s\n", fields["name"])
	fmt.Fprintf(&buf, "Departs   : %s\n", fields["departs"])
	fmt.Fprintf(&buf, "Arrives   : %s\n", fields["arrives"])
	fmt.Fprintf(&buf, "Gate      : %s\n", fields["gate"])
	fmt.Fprintf(&buf, "Seat      : %s\n", fields["seat_number"])

	return buf.Bytes(), nil
}
