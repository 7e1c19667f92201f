// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package watch

import (
	"fmt"
	"strconv"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
)

// maxGaugeDepth bounds the depth gauge's scale: depths beyond it just
// show a full bar instead of growing the axis, since iterative deepening
// can in principle reach MaxDepth but rarely usefully goes that deep in
// a live display.
const maxGaugeDepth = 40

// dashboard owns the termui widgets the watch frontend renders, and
// knows how to lay them out and fill them in from a parsed info line.
type dashboard struct {
	header *widgets.Paragraph
	depth  *widgets.Gauge
	stats  *widgets.Paragraph
	pv     *widgets.Paragraph
}

func newDashboard() *dashboard {
	header := widgets.NewParagraph()
	header.Title = "corvid watch"
	header.Text = "waiting for the first iteration..."

	depth := widgets.NewGauge()
	depth.Title = "depth"
	depth.BarColor = ui.ColorCyan

	stats := widgets.NewParagraph()
	stats.Title = "stats"

	pv := widgets.NewParagraph()
	pv.Title = "principal variation"
	pv.WrapText = false // wrapPV already wraps to the pane width

	d := &dashboard{header: header, depth: depth, stats: stats, pv: pv}
	d.resize(80, 24)
	return d
}

func (d *dashboard) widgets() []ui.Drawable {
	return []ui.Drawable{d.header, d.depth, d.stats, d.pv}
}

func (d *dashboard) resize(width, height int) {
	d.header.SetRect(0, 0, width, 3)
	d.depth.SetRect(0, 3, width, 6)
	d.stats.SetRect(0, 6, width, 10)
	d.pv.SetRect(0, 10, width, height)
}

// update fills in the dashboard's widgets from a single parsed info
// line. width is the pv pane's current content width, used to wrap the
// move list.
func (d *dashboard) update(in info, width int) {
	d.header.Text = fmt.Sprintf("score %s", in.Score)

	if depth, err := strconv.Atoi(in.Depth); err == nil {
		percent := depth * 100 / maxGaugeDepth
		if percent > 100 {
			percent = 100
		}
		if percent < 0 {
			percent = 0
		}
		d.depth.Percent = percent
	}
	d.depth.Label = fmt.Sprintf("depth %s (seldepth %s)", in.Depth, in.SelDepth)

	d.stats.Text = fmt.Sprintf("nodes %s    nps %s    hashfull %s‰", in.Nodes, in.Nps, in.Hashfull)

	d.pv.Text = wrapPV(in.PV, width-4)
}
