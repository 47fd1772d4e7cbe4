package tui

import "testing"

func TestConnectCommand(t *testing.T) {
	tests := []struct {
		addr      string
		wantCmd   string
		wantNamed bool
	}{
		{":23234", "ssh -p 23234 localhost", false},
		{"0.0.0.0:23234", "ssh -p 23234 localhost", false},
		{"[::]:2222", "ssh -p 2222 localhost", false},
		{"play.example.com:2222", "ssh -p 2222 play.example.com", true},
		{"play.example.com:22", "ssh play.example.com", true},
		{"play.example.com", "ssh play.example.com", true},
	}

	for _, tc := range tests {
		t.Run(tc.addr, func(t *testing.T) {
			cmd, named := ConnectCommand(tc.addr)
			if cmd != tc.wantCmd || named != tc.wantNamed {
				t.Errorf("ConnectCommand(%q) = %q, %v, expected %q, %v", tc.addr, cmd, named, tc.wantCmd, tc.wantNamed)
			}
		})
	}
}
