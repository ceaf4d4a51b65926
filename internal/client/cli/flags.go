package cli

import "strconv"

// optionalBool is a bool flag that remembers whether it was given, so an
// absent -never-expires can defer to the account's stored preference.
type optionalBool struct {
	value *bool
}

func (o *optionalBool) String() string {
	if o == nil || o.value == nil {
		return ""
	}
	return strconv.FormatBool(*o.value)
}

func (o *optionalBool) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	o.value = &b
	return nil
}

func (o *optionalBool) IsBoolFlag() bool { return true }
