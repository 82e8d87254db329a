package utils

import "testing"

const firefoxLinuxUA = "Mozilla/5.0 (X11; Linux x86_64; rv:124.0) Gecko/20100101 Firefox/124.0"

func TestParseUserAgent(t *testing.T) {
	browser, os, device := ParseUserAgent(firefoxLinuxUA)
	if browser != "Firefox" {
		t.Errorf("browser = %q, want Firefox", browser)
	}
	if os != "Linux" {
		t.Errorf("os = %q, want Linux", os)
	}
	if device != "Desktop" {
		t.Errorf("device = %q, want Desktop", device)
	}
}

func TestParseUserAgentEmpty(t *testing.T) {
	browser, os, device := ParseUserAgent("")
	if browser != "Unknown Browser" || os != "Unknown OS" || device != "Desktop" {
		t.Errorf("unexpected fallback: %q, %q, %q", browser, os, device)
	}
}

func TestGenerateSessionName(t *testing.T) {
	name := GenerateSessionName(firefoxLinuxUA)
	if name != "Firefox on Linux (Desktop)" {
		t.Errorf("session name = %q", name)
	}
}
