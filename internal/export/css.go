package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/san-kum/gridlife/internal/scene"
	"github.com/san-kum/gridlife/internal/timeline"
)

const keyframesName = "gen"

// css writes the shared curve once as @keyframes and gives each layer an
// animation-delay equal to its offset. step-start makes every keyframe
// interval take the value of its closing stop, so the drop lands exactly on
// the cutoff and the layers never overlap.
type css struct {
	curve  *timeline.Curve
	period time.Duration
}

func (css) name() string { return BackendCSS }

func (c css) style(sb *strings.Builder, _ *scene.Scene) {
	sb.WriteString("<style>\n")
	sb.WriteString(fmt.Sprintf("@keyframes %s {", keyframesName))
	for _, kf := range c.curve.Keyframes() {
		sb.WriteString(fmt.Sprintf(" %s { opacity: %g; }", percent(kf.Percent), kf.Opacity))
	}
	sb.WriteString(" }\n")
	sb.WriteString(fmt.Sprintf(".%s { opacity: 0; animation: %s %s step-start infinite; }\n",
		keyframesName, keyframesName, seconds(c.period)))
	sb.WriteString("</style>\n")
}

func (css) openLayer(sb *strings.Builder, layer scene.Layer) {
	cy := layer.Animation.(*timeline.Cyclic)
	sb.WriteString(fmt.Sprintf(`<g id="gen%d" class="%s" style="animation-delay: %s">
`, layer.Index, keyframesName, seconds(cy.Offset)))
}
