/*
 * Copyright 2021-2026 by Nedim Sabic Sabic
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

// Numeric flags other than integers reach the settings as strings, so the
// schema accepts both representations for them.
var schema = `
{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"config-file":	{"type": "string"},
		"api": {
			"type": "object",
			"properties": {
				"transport":	{"type": "string", "minLength": 3},
				"timeout":		{"type": "string", "minLength": 2, "pattern": "^([0-9]+(\\.[0-9]+)?(ns|us|µs|ms|s|m|h))+$"},
				"rate-limit":	{"type": ["number", "string"], "minimum": 0, "pattern": "^[0-9]+(\\.[0-9]+)?$"},
				"rate-burst":	{"type": "integer", "minimum": 1}
			},
			"additionalProperties": false
		},
		"stress": {
			"type": "object",
			"properties": {
				"kind":			{"type": "string", "minLength": 1},
				"workers":		{"type": "integer", "minimum": 0},
				"iterations":	{"type": "integer", "minimum": 1},
				"mode":			{"type": "string", "enum": ["fetch-add", "cas", "weak-cas"]}
			},
			"additionalProperties": false
		},
		"cells": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"name":		{"type": "string", "minLength": 1},
					"type":		{"type": "string", "minLength": 1},
					"value":	{"type": ["integer", "boolean", "string", "null"]}
				},
				"required": ["name", "type"],
				"additionalProperties": false
			}
		},
		"logging": {
			"type": "object",
			"properties": {
				"level":		{"type": "string", "enum": ["trace", "debug", "info", "warn", "warning", "error", "fatal", "panic"]},
				"max-age":		{"type": "integer", "minimum": 0},
				"max-backups":	{"type": "integer", "minimum": 0},
				"max-size":		{"type": "integer", "minimum": 1},
				"formatter":	{"type": "string", "enum": ["json", "text"]},
				"path":			{"type": "string"},
				"log-stdout":	{"type": "boolean"}
			},
			"additionalProperties": false
		}
	}
}
`
