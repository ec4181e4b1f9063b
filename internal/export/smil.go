package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/gridlife/internal/scene"
	"github.com/san-kum/gridlife/internal/timeline"
)

// Backend names.
const (
	BackendSMIL = "smil"
	BackendCSS  = "css"
)

// smil animates each layer with its own discrete <animate> element: opacity
// 1 from begin, 0 after dur, frozen at the end.
type smil struct{}

func (smil) name() string { return BackendSMIL }

func (smil) style(*strings.Builder, *scene.Scene) {}

func (smil) openLayer(sb *strings.Builder, layer scene.Layer) {
	d := layer.Animation.(*timeline.Discrete)
	sb.WriteString(fmt.Sprintf(`<g id="gen%d" opacity="0">
<animate attributeName="opacity" values="1;0" keyTimes="0;1" calcMode="discrete" begin="%s" dur="%s" fill="freeze"/>
`, layer.Index, seconds(d.Begin), seconds(d.Duration)))
}
