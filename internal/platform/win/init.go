//go:build windows

package win

import "github.com/tabstrip/hover-cli/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		setDPIAware()
		desktop := &Desktop{}
		return &platform.Provider{
			Cursor:   desktop,
			Windows:  desktop,
			Capturer: desktop,
		}, nil
	}
}
