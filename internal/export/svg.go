package export

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/gridlife/internal/life"
	"github.com/san-kum/gridlife/internal/scene"
	"github.com/san-kum/gridlife/internal/timeline"
)

// backend writes the animation-specific parts of the document.
type backend interface {
	name() string
	// style is emitted once inside <svg>, before any layer.
	style(sb *strings.Builder, sc *scene.Scene)
	// openLayer writes the opening <g> of a generation layer, including any
	// animation element that must be its first child.
	openLayer(sb *strings.Builder, layer scene.Layer)
}

// SVG renders sc as a standalone SVG document. The animation backend is
// chosen from the layers' encoding: discrete layers become SMIL <animate>
// elements, cyclic layers share one CSS @keyframes rule.
func SVG(sc *scene.Scene) (string, error) {
	b, err := backendFor(sc)
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" preserveAspectRatio="xMinYMin meet">
`, sc.Width, sc.Height, sc.Width, sc.Height))

	b.style(&sb, sc)

	sb.WriteString("<g>\n")
	writeCells(&sb, sc.Background.Cells, sc.Background.Appearance, sc.CellSize)
	sb.WriteString("</g>\n")

	for _, layer := range sc.Generations {
		b.openLayer(&sb, layer)
		writeCells(&sb, layer.Cells, layer.Appearance, sc.CellSize)
		sb.WriteString("</g>\n")
	}

	sb.WriteString("</svg>\n")
	return sb.String(), nil
}

// WriteSVG writes the document for sc to w.
func WriteSVG(w io.Writer, sc *scene.Scene) error {
	doc, err := SVG(sc)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, doc)
	return err
}

// SaveSVG writes the document for sc to path.
func SaveSVG(path string, sc *scene.Scene) error {
	doc, err := SVG(sc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(doc), 0644)
}

// Backend returns the backend name SVG would use for sc.
func Backend(sc *scene.Scene) (string, error) {
	b, err := backendFor(sc)
	if err != nil {
		return "", err
	}
	return b.name(), nil
}

func backendFor(sc *scene.Scene) (backend, error) {
	if sc == nil || len(sc.Generations) == 0 {
		return nil, life.Invalid("scene has no generation layers")
	}

	var b backend
	switch first := sc.Generations[0].Animation.(type) {
	case *timeline.Discrete:
		b = smil{}
	case *timeline.Cyclic:
		if err := checkKeyframes(first.Curve); err != nil {
			return nil, err
		}
		b = css{curve: first.Curve, period: first.Period}
	default:
		return nil, life.Invalid("unsupported animation %T", first)
	}

	for i, layer := range sc.Generations {
		switch a := layer.Animation.(type) {
		case *timeline.Discrete:
			if b.name() != BackendSMIL {
				return nil, life.Invalid("layer %d mixes discrete and cyclic animations", i)
			}
		case *timeline.Cyclic:
			c, ok := b.(css)
			if !ok || a.Curve != c.curve {
				return nil, life.Invalid("layer %d does not share the cyclic curve", i)
			}
		default:
			return nil, life.Invalid("layer %d: unsupported animation %T", i, a)
		}
	}
	return b, nil
}

func writeCells(sb *strings.Builder, cells []scene.Cell, appearance string, size int) {
	if strings.HasPrefix(appearance, "#") {
		fill := escape(appearance)
		for _, c := range cells {
			sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>
`, c.X, c.Y, size, size, fill))
		}
		return
	}

	href := escape(appearance)
	for _, c := range cells {
		sb.WriteString(fmt.Sprintf(`<image href="%s" x="%d" y="%d" width="%d" height="%d"/>
`, href, c.X, c.Y, size, size))
	}
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escape(s string) string { return attrEscaper.Replace(s) }

// seconds formats d as an SVG/CSS clock value, e.g. "0.2s".
func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + "s"
}

// percentScale keeps keyframe stops three orders of magnitude finer than
// timeline.MinEpsilon.
const percentScale = 1e9

func roundPercent(p float64) float64 {
	return math.Round(p*percentScale) / percentScale
}

// percent formats p with at most nine decimals.
func percent(p float64) string {
	return strconv.FormatFloat(roundPercent(p), 'f', -1, 64) + "%"
}

// checkKeyframes rejects a curve whose stops would not be strictly
// increasing once written.
func checkKeyframes(c *timeline.Curve) error {
	kfs := c.Keyframes()
	for i := 1; i < len(kfs); i++ {
		if roundPercent(kfs[i].Percent) <= roundPercent(kfs[i-1].Percent) {
			return life.Invalid("keyframe %s does not follow %s", percent(kfs[i].Percent), percent(kfs[i-1].Percent))
		}
	}
	return nil
}
