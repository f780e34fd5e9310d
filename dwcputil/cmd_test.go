/*
Copyright © 2024 the DWCPN authors.
This file is part of DWCPN.

DWCPN is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

DWCPN is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with DWCPN.  If not, see <http://www.gnu.org/licenses/>.
*/

package dwcputil

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spatialmodel/dwcpn"
	"github.com/spf13/cast"
)

// setTestConfig points the configuration at the test data and sends
// outputs to a temporary directory, which it returns.
func setTestConfig(t *testing.T) string {
	dir := t.TempDir()
	t.Setenv("DWCPN_TESTDATA", "testdata")
	t.Setenv("DWCPN_TESTOUT", dir)
	Cfg.Set("config", "testdata/config.toml")
	return dir
}

func TestVersion(t *testing.T) {
	buf := new(bytes.Buffer)
	Root.SetOut(buf)
	Root.SetErr(buf)
	defer Root.SetOut(nil)
	defer Root.SetErr(nil)
	Root.SetArgs([]string{"version"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	if want := fmt.Sprintf("DWCPN v%s\n", dwcpn.Version); buf.String() != want {
		t.Errorf("%q != %q", buf.String(), want)
	}
}

func TestRun(t *testing.T) {
	dir := setTestConfig(t)
	Root.SetArgs([]string{"run"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(filepath.Join(dir, "output.csv"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 5 {
		t.Fatalf("%d records; want 5", len(records))
	}
	if strings.Join(records[0], ",") != strings.Join(outputHeader, ",") {
		t.Errorf("header: %v", records[0])
	}
	for _, r := range records[1:3] {
		pp, err := cast.ToFloat64E(r[3])
		if err != nil {
			t.Fatal(err)
		}
		picoPP, err := cast.ToFloat64E(r[7])
		if err != nil {
			t.Fatal(err)
		}
		if !(pp > 0) || !(picoPP > 0) {
			t.Errorf("lat %s: pp %g, pico pp %g", r[0], pp, picoPP)
		}
		if r[8] != "" {
			t.Errorf("lat %s: error %s", r[0], r[8])
		}
	}
	if records[3][8] != "degenerate_day" {
		t.Errorf("polar day error kind %q", records[3][8])
	}
	if records[4][8] != "invalid_input" {
		t.Errorf("negative chlorophyll error kind %q", records[4][8])
	}
}

func TestProfile(t *testing.T) {
	dir := setTestConfig(t)
	plotFile := filepath.Join(dir, "profile.png")
	Cfg.Set("plotfile", plotFile)
	Cfg.Set("record", 1)
	defer Cfg.Set("record", 0)
	Root.SetArgs([]string{"profile"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(plotFile)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("empty plot file")
	}

	Cfg.Set("record", 2)
	Root.SetArgs([]string{"profile"})
	if err := Root.Execute(); !errors.Is(err, dwcpn.ErrDegenerateDay) {
		t.Errorf("polar day: err = %v", err)
	}

	Cfg.Set("record", 10)
	Root.SetArgs([]string{"profile"})
	if err := Root.Execute(); err == nil {
		t.Error("expected an error for a record out of range")
	}
}

func TestErrorKind(t *testing.T) {
	for _, test := range []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("x: %w", dwcpn.ErrInvalidInput), "invalid_input"},
		{fmt.Errorf("x: %w", dwcpn.ErrDegenerateDay), "degenerate_day"},
		{fmt.Errorf("x: %w", dwcpn.ErrImplausibleProduction), "implausible_production"},
		{errors.New("x"), "error"},
	} {
		if got := errorKind(test.err); got != test.want {
			t.Errorf("%v: %q != %q", test.err, got, test.want)
		}
	}
}

func TestConfigHandler(t *testing.T) {
	setTestConfig(t)
	r := httptest.NewRequest("GET", "/setConfig?config=testdata/config.toml", nil)
	w := httptest.NewRecorder()
	configHandler(w, r)
	if w.Code != 200 {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	config := make(map[string]interface{})
	if err := json.NewDecoder(w.Body).Decode(&config); err != nil {
		t.Fatal(err)
	}
	if enabled, err := cast.ToBoolE(config["Settings.Pico.Enabled"]); err != nil || !enabled {
		t.Errorf("Settings.Pico.Enabled = %v", config["Settings.Pico.Enabled"])
	}
	if len(config) != len(options) {
		t.Errorf("%d options; want %d", len(config), len(options))
	}
}

func TestConfigHandlerBadQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/setConfig?config=%zz", nil)
	w := httptest.NewRecorder()
	configHandler(w, r)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status %d; want %d", w.Code, http.StatusBadRequest)
	}
}
