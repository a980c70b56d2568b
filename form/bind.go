/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package form

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Bind decodes the pairs from the current one to the end of the form into
// out, which must be a pointer to a struct or a map. Fields are matched by
// their `form` tag, or case-insensitively by name. Values are converted
// weakly, so "42" fills an int and a single value fills a slice. A key seen
// more than once yields all its values in order.
func (v *View) Bind(out any) error {
	fields := make(map[string]any)
	for ok := v.valid; ok; ok = v.Next() {
		key, err := v.Key()
		if err != nil {
			return err
		}
		value, err := v.Value()
		if err != nil {
			return err
		}
		switch prev := fields[key].(type) {
		case nil:
			fields[key] = value
		case string:
			fields[key] = []string{prev, value}
		case []string:
			fields[key] = append(prev, value)
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "form",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("binding form: %w", err)
	}
	if err := dec.Decode(fields); err != nil {
		return fmt.Errorf("binding form: %w", err)
	}
	return nil
}
