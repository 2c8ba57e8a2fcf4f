package methodopts

import (
	"encoding/json"
	"strconv"
)

// MarshalJSON renders Options back into the wire field names, omitting
// anything unset.
func (o *Options) MarshalJSON() ([]byte, error) {
	type wire struct {
		WaitForReady     *bool  `json:"waitForReady,omitempty"`
		Timeout          string `json:"timeout,omitempty"`
		MaxRequestBytes  *int64 `json:"maxRequestMessageBytes,omitempty"`
		MaxResponseBytes *int64 `json:"maxResponseMessageBytes,omitempty"`
	}
	w := wire{WaitForReady: o.WaitForReady}
	if o.Timeout > 0 {
		w.Timeout = strconv.FormatFloat(o.Timeout.Seconds(), 'f', -1, 64) + "s"
	}
	if o.MaxRequestBytes >= 0 {
		v := o.MaxRequestBytes
		w.MaxRequestBytes = &v
	}
	if o.MaxResponseBytes >= 0 {
		v := o.MaxResponseBytes
		w.MaxResponseBytes = &v
	}
	return json.Marshal(w)
}
