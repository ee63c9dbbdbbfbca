// ABOUTME: Display is the rendering collaborator a Session reports to.
// ABOUTME: Surfaces name the parts of the UI a mutation invalidates.
package session

// Surface is a redrawable part of the interface.
type Surface string

const (
	SurfaceView      Surface = "view"
	SurfaceDashboard Surface = "dashboard"
	SurfaceExercises Surface = "exercises"
	SurfaceMeals     Surface = "meals"
	SurfaceCalendar  Surface = "calendar"
	SurfaceChart     Surface = "chart"
	SurfaceSettings  Surface = "settings"
	SurfaceTheme     Surface = "theme"
)

// AllSurfaces lists every surface, for full redraws.
var AllSurfaces = []Surface{
	SurfaceView, SurfaceDashboard, SurfaceExercises, SurfaceMeals,
	SurfaceCalendar, SurfaceChart, SurfaceSettings, SurfaceTheme,
}

// Display receives redraw requests, notifications and prompts.
// Calls happen with the session lock held; implementations must not call
// back into the Session synchronously.
type Display interface {
	Redraw(surfaces ...Surface)
	Notify(msg string)
	ShowPrompt(p *Prompt)
}

// NopDisplay ignores everything. Used by headless surfaces.
type NopDisplay struct{}

func (NopDisplay) Redraw(...Surface) {}

func (NopDisplay) Notify(string) {}

func (NopDisplay) ShowPrompt(*Prompt) {}
