package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tickworld/ecs"
)

// SystemInfo is one row of the schedule viewer.
type SystemInfo struct {
	Name           string
	Stage          ecs.Stage
	Order          int
	Dependencies   []string
	ExecutionCount int64
	AvgDuration    float64
	LastDuration   float64
}

type ScheduleViewerCache struct {
	systems       []SystemInfo
	sortColumn    int
	sortAscending bool
}

func NewScheduleViewer() ScheduleViewer {
	return ScheduleViewer{
		cache: &ScheduleViewerCache{
			sortColumn:    1,
			sortAscending: true,
		},
	}
}

func (sv *ScheduleViewer) Render(schedule *ecs.Schedule) {
	if !imgui.BeginV("Schedule", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	sv.rebuildCache(schedule)
	stats := schedule.Stats()
	imgui.Text(fmt.Sprintf("Systems: %d  Runs: %d  Executions: %d", stats.SystemCount, stats.Runs, stats.TotalExecutions))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("ScheduleTable", 6, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Order")
		imgui.TableSetupColumn("Stage")
		imgui.TableSetupColumn("Depends On")
		imgui.TableSetupColumn("Runs")
		imgui.TableSetupColumn("Avg (ms)")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			sv.cache.sortColumn = int(spec.ColumnIndex())
			sv.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sv.sortSystems()
			sortSpecs.SetSpecsDirty(false)
		}

		for _, sys := range sv.cache.systems {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := sv.selectedName == sys.Name
			if imgui.SelectableBoolV(sys.Name, isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				sv.selectedName = sys.Name
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", sys.Order))

			imgui.TableNextColumn()
			imgui.Text(sys.Stage.String())

			imgui.TableNextColumn()
			imgui.Text(strings.Join(sys.Dependencies, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", sys.AvgDuration))
		}

		imgui.EndTable()
	}

	imgui.End()
}

// Systems returns the rows of the most recent render.
func (sv *ScheduleViewer) Systems() []SystemInfo {
	return sv.cache.systems
}

func (sv *ScheduleViewer) rebuildCache(schedule *ecs.Schedule) {
	sv.cache.systems = collectSystemInfo(schedule)
	sv.sortSystems()
}

// collectSystemInfo lists every system of the schedule in execution order.
func collectSystemInfo(schedule *ecs.Schedule) []SystemInfo {
	order := schedule.Order()
	position := make(map[string]int, len(order))
	for i, name := range order {
		position[name] = i
	}

	stats := schedule.Stats()
	systems := make([]SystemInfo, 0, len(stats.Systems))
	for _, s := range stats.Systems {
		deps, _ := schedule.Dependencies(s.Name)
		systems = append(systems, SystemInfo{
			Name:           s.Name,
			Stage:          s.Stage,
			Order:          position[s.Name],
			Dependencies:   deps,
			ExecutionCount: s.ExecutionCount,
			AvgDuration:    float64(s.AvgDuration.Microseconds()) / 1000.0,
			LastDuration:   float64(s.LastDuration.Microseconds()) / 1000.0,
		})
	}

	sort.Slice(systems, func(i, j int) bool {
		return systems[i].Order < systems[j].Order
	})
	return systems
}

func (sv *ScheduleViewer) sortSystems() {
	sort.SliceStable(sv.cache.systems, func(i, j int) bool {
		a, b := sv.cache.systems[i], sv.cache.systems[j]
		var less bool

		switch sv.cache.sortColumn {
		case 0:
			less = a.Name < b.Name
		case 1:
			less = a.Order < b.Order
		case 2:
			less = a.Stage < b.Stage
		case 3:
			less = len(a.Dependencies) < len(b.Dependencies)
		case 4:
			less = a.ExecutionCount < b.ExecutionCount
		case 5:
			less = a.AvgDuration < b.AvgDuration
		default:
			less = a.Order < b.Order
		}

		if !sv.cache.sortAscending {
			return !less
		}
		return less
	})
}
