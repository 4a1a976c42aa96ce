package pwdriver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themizzi/jupitertoys/internal/driver"
)

func TestToPlaywrightSelector(t *testing.T) {
	tests := []struct {
		selector string
		want     string
	}{
		{`//a[text()="Shop"]`, `xpath=//a[text()="Shop"]`},
		{`(//a)[1]`, `xpath=(//a)[1]`},
		{`#forename`, `#forename`},
		{`li[class*="active"] a[href*="#/cart"]`, `li[class*="active"] a[href*="#/cart"]`},
		{`.//td`, `.//td`},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			assert.Equal(t, tt.want, toPlaywrightSelector(tt.selector))
		})
	}
}

func TestScreenshotPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots", "nested")

	path, err := screenshotPath(dir, "cart-totals-1-abcd1234")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cart-totals-1-abcd1234.png"), path)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestElementTimeout(t *testing.T) {
	e := &element{selector: "#x", timeout: 10 * time.Second}

	assert.Equal(t, 10000.0, *e.timeoutMS(0))
	assert.Equal(t, 5000.0, *e.timeoutMS(5*time.Second))
}

func TestElementWrap(t *testing.T) {
	e := &element{selector: "#forename"}

	timeout := e.wrap("click", fmt.Errorf("locator.click: %w", playwright.ErrTimeout))
	assert.ErrorIs(t, timeout, driver.ErrNotDisplayed)
	assert.Contains(t, timeout.Error(), "#forename")

	detached := errors.New("element is detached")
	other := e.wrap("click", detached)
	assert.ErrorIs(t, other, detached)
	assert.NotErrorIs(t, other, driver.ErrNotDisplayed)
}
