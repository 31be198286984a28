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

package version

import (
	"fmt"
	"io"
	"runtime"

	semver "github.com/hashicorp/go-version"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Version stores the SemVer release information along with the
// commit that produced the release and other useful information.
type Version struct {
	Sem    *semver.Version
	Commit string
	Date   string
}

var version string

// Set initializes the version string as global variable.
func Set(v string) { version = v }

// Get returns the version string.
func Get() string {
	if IsDev() {
		return "dev"
	}
	return version
}

// IsDev determines if this is a dev version.
func IsDev() bool { return version == "0.0.0" || version == "" }

// ProductToken returns a tag to be poked in User Agent headers.
func ProductToken() string { return fmt.Sprintf("seqatomic/%s", Get()) }

// New parses the version string and returns the version instance. The empty
// version designates the dev build.
func New(version, commit, date string) (Version, error) {
	v := Version{Commit: commit, Date: date}
	if version == "" || version == "0.0.0" {
		return v, nil
	}
	sem, err := semver.NewSemver(version)
	if err != nil {
		return v, fmt.Errorf("invalid semver release %q: %v", version, err)
	}
	v.Sem = sem
	return v, nil
}

// String returns the release version or dev for development builds.
func (v Version) String() string {
	if v.Sem == nil {
		return "dev"
	}
	return v.Sem.String()
}

// Render dumps the version information to the writer.
func (v Version) Render(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendRow(table.Row{"Version", v.String()})
	t.AppendRow(table.Row{"Commit", v.Commit})
	t.AppendRow(table.Row{"Build date", v.Date})

	t.AppendSeparator()

	t.AppendRow(table.Row{"Go compiler", runtime.Version()})
	t.AppendRow(table.Row{"Platform", runtime.GOOS + "/" + runtime.GOARCH})

	t.Render()
}
