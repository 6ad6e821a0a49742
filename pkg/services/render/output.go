package render

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/wcharczuk/go-chart/v2"
)

func encodePNG(ctx context.Context, ch chart.Chart) ([]byte, error) {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render chart %q: %w", ch.Title, err)
	}
	zerolog.Ctx(ctx).Debug().
		Str("title", ch.Title).
		Int("width", ch.Width).
		Int("height", ch.Height).
		Int("bytes", buf.Len()).
		Msg("chart rendered")
	return buf.Bytes(), nil
}

// WritePNG writes an encoded image, creating parent directories as needed.
func WritePNG(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
