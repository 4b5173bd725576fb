/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fentec-project/binom/data"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// write formats out, as returned by generate, to w.
func write(w io.Writer, format string, out interface{}) error {
	if m, ok := out.(*data.Matrix); ok {
		out = m.Slices()
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		return enc.Encode(out)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(out); err != nil {
			return errors.Wrap(err, "cannot encode output")
		}
		return enc.Close()
	case formatText:
		_, err := io.WriteString(w, text(out))
		return err
	}
	return errors.Errorf("unknown output format %q", format)
}

// text renders vectors on a single line and puts each element of an
// outer dimension on its own line. Nested arrays are separated by an
// empty line per level.
func text(out interface{}) string {
	switch v := out.(type) {
	case data.Vector:
		return v.String() + "\n"
	case [][]float64:
		var b strings.Builder
		for _, row := range v {
			strs := make([]string, len(row))
			for i, x := range row {
				strs[i] = fmt.Sprint(x)
			}
			b.WriteString(strings.Join(strs, " "))
			b.WriteString("\n")
		}
		return b.String()
	case []interface{}:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = text(e)
		}
		sep := ""
		if len(v) > 0 {
			if _, leaf := v[0].(data.Vector); !leaf {
				sep = "\n"
			}
		}
		return strings.Join(parts, sep)
	}
	return fmt.Sprintln(out)
}
