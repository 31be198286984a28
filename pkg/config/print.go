/*
 * Copyright 2019-2020 by Nedim Sabic Sabic
 * https://www.fibratus.io
 * All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// flatten collapses nested settings into dotted keys. Lists are printed inline.
func flatten(prefix string, value interface{}, out map[string]string) {
	switch v := value.(type) {
	case map[string]interface{}:
		for k, item := range v {
			flatten(join(prefix, k), item, out)
		}
	case map[interface{}]interface{}:
		for k, item := range v {
			flatten(join(prefix, fmt.Sprint(k)), item, out)
		}
	case []interface{}:
		items := make([]string, 0, len(v))
		for _, item := range v {
			items = append(items, printItem(item))
		}
		out[prefix] = strings.Join(items, "; ")
	default:
		out[prefix] = fmt.Sprintf("%v", v)
	}
}

func printItem(item interface{}) string {
	m := make(map[string]string)
	flatten("", item, m)
	if s, ok := m[""]; ok && len(m) == 1 {
		return s
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString("[")
	for _, k := range keys {
		b.WriteString(" ")
		b.WriteString(k)
		b.WriteString("=>")
		b.WriteString(m[k])
	}
	b.WriteString(" ]")
	return b.String()
}

func printLine(buffer *bytes.Buffer, maxLength int, key string, value string) {
	if value == "" {
		return
	}
	buffer.WriteString("\n\t")
	buffer.WriteString(key)
	buffer.WriteString(" ")
	buffer.WriteString(strings.Repeat(".", maxLength-len(key)+5))
	buffer.WriteString(" ")
	buffer.WriteString(value)
}

// Print returns the string with all the config options pretty-printed.
func (c *Config) Print() string {
	opts := make(map[string]string)
	flatten("", c.viper.AllSettings(), opts)

	var buffer bytes.Buffer
	var maxKeyLen = 20

	keys := make([]string, 0, len(opts))
	// for printing we need to find the max key length
	for key := range opts {
		if len(key) > maxKeyLen {
			maxKeyLen = len(key)
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		printLine(&buffer, maxKeyLen, key, opts[key])
	}

	return buffer.String()
}
