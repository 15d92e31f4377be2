// Command gen writes the component and system definitions exercised by
// ecs-stress. Run it from the ecs-stress directory:
//
//	go run ./gen -components 16 -systems 12
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"text/template"

	"github.com/plus3/tickworld/ecs"
	"golang.org/x/tools/imports"
)

type component struct {
	Name string
}

type system struct {
	Name       string
	Stage      string
	A, B       string
	Dependency string
}

type data struct {
	Components    int
	Systems       int
	ComponentList []component
	SystemList    []system
}

const source = `// Code generated by ecs-stress/gen; DO NOT EDIT.

package main

import (
	"math/rand/v2"

	"github.com/plus3/tickworld/app"
	"github.com/plus3/tickworld/ecs"
)

const (
	componentCount = {{.Components}}
	systemCount    = {{.Systems}}
)
{{range .ComponentList}}
type {{.Name}} struct {
	Value float64
	Count int
}
{{end}}
// RegisterAllGeneratedComponents creates a storage for every generated component.
func RegisterAllGeneratedComponents(w *ecs.World) {
{{- range .ComponentList}}
	ecs.RegisterComponent[{{.Name}}](w)
{{- end}}
}

var componentFactories = [componentCount]func() any{
{{- range .ComponentList}}
	func() any { return {{.Name}}{Value: rand.Float64()} },
{{- end}}
}

// SpawnRandomEntity spawns an entity with numComponents random components.
// Repeated picks overwrite each other.
func SpawnRandomEntity(w *ecs.World, numComponents int) ecs.Entity {
	b := w.Spawn()
	for range numComponents {
		b.With(componentFactories[rand.IntN(componentCount)]())
	}
	return b.Entity()
}

// RegisterAllGeneratedSystems adds every generated system to a.
func RegisterAllGeneratedSystems(a *app.App) {
{{- range .SystemList}}
	a.AddSystem(ecs.NewSystemFn("{{.Name}}", func(w *ecs.World) {
		for _, row := range ecs.QueryTwo[{{.A}}, {{.B}}](w) {
			row.A.Value += row.B.Value * 0.5
			row.B.Count++
		}
	}){{if .Dependency}}.WithDependency("{{.Dependency}}"){{end}}, ecs.{{.Stage}})
{{- end}}
}
`

func main() {
	components := flag.Int("components", 16, "Number of component types to generate.")
	systems := flag.Int("systems", 12, "Number of systems to generate.")
	chain := flag.Int("chain", 3, "Length of each run of dependent systems.")
	out := flag.String("out", "generated.go", "Output file.")
	flag.Parse()

	if *components < 2 {
		log.Fatalf("need at least 2 components, got %d", *components)
	}
	if *chain < 1 {
		*chain = 1
	}

	d := data{Components: *components, Systems: *systems}
	for i := range *components {
		d.ComponentList = append(d.ComponentList, component{Name: fmt.Sprintf("Component%03d", i)})
	}

	stages := ecs.AllStages()
	for i := range *systems {
		s := system{
			Name:  fmt.Sprintf("system%03d", i),
			Stage: stages[i%len(stages)].String(),
			A:     d.ComponentList[i%*components].Name,
			B:     d.ComponentList[(i*7+1)%*components].Name,
		}
		if s.A == s.B {
			s.B = d.ComponentList[(i+1)%*components].Name
		}
		// Dependencies point backwards so the graph stays acyclic, and often
		// across stages so the schedule has to pull systems forward.
		if i%*chain != 0 {
			s.Dependency = fmt.Sprintf("system%03d", i-1)
		}
		d.SystemList = append(d.SystemList, s)
	}

	tmpl := template.Must(template.New("generated").Parse(source))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, d); err != nil {
		log.Fatalf("failed to execute template: %v", err)
	}

	formatted, err := imports.Process(*out, buf.Bytes(), nil)
	if err != nil {
		log.Fatalf("failed to format generated code: %v", err)
	}

	if err := os.WriteFile(*out, formatted, 0o644); err != nil {
		log.Fatalf("failed to write %s: %v", *out, err)
	}
	log.Printf("wrote %s: %d components, %d systems", *out, *components, *systems)
}
