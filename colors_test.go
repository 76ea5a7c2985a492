// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import "testing"

func TestDetectTerminalMode(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want TerminalMode
	}{
		{"dark COLORFGBG", map[string]string{"COLORFGBG": "15;0"}, TerminalModeDark},
		{"light COLORFGBG", map[string]string{"COLORFGBG": "0;15"}, TerminalModeLight},
		{"TERM_THEME light", map[string]string{"TERM_THEME": "Solarized-Light"}, TerminalModeLight},
		{"THEME dark", map[string]string{"THEME": "dark"}, TerminalModeDark},
		{"unparseable COLORFGBG falls through", map[string]string{"COLORFGBG": "12;3", "THEME": "light"}, TerminalModeLight},
		{"default", map[string]string{}, TerminalModeDark},
	}

	for _, tt := range tests {
		getenv := func(key string) string { return tt.env[key] }
		if got := detectTerminalMode(getenv); got != tt.want {
			t.Errorf("%s: detectTerminalMode() = %v; want %v", tt.name, got, tt.want)
		}
	}
}
