package estructura

import (
	"fmt"
	"path/filepath"
)

// Template describes one folder of the fixed project structure.
//
// Format is the literal format string the folder name is produced from.
// The separator (or its absence) between the numeric prefix and the project
// name is part of the literal and is never normalized; changing a folder
// name means editing its Format here and nowhere else.
type Template struct {
	Prefix string // numeric prefix "00".."09"; empty for guild entries
	Format string // format string with a single %s verb for the project name
	Parent int    // index of the parent entry in Templates, or NoParent
}

// NoParent marks a top-level entry.
const NoParent = -1

// gremiosIndex is the position of the Gremios entry that hosts the seven
// guild subfolders.
const gremiosIndex = 6

// Templates is the fixed table of the 17 folders every project gets:
// ten numbered top-level folders plus seven guild subfolders under the
// Gremios entry. Order is creation order.
var Templates = [...]Template{
	{Prefix: "00", Format: "00_%sDatos", Parent: NoParent},
	{Prefix: "01", Format: "01%sUdala", Parent: NoParent},
	{Prefix: "02", Format: "02%sGrafico", Parent: NoParent},
	{Prefix: "03", Format: "03%sProyecto", Parent: NoParent},
	{Prefix: "04", Format: "04%sSeguridad", Parent: NoParent},
	{Prefix: "05", Format: "05%sPrest", Parent: NoParent},
	{Prefix: "06", Format: "06%s_Gremios", Parent: NoParent},
	{Format: "%s_JAIZKIBEL", Parent: gremiosIndex},
	{Format: "%s_SALTOKI", Parent: gremiosIndex},
	{Format: "%s_TERMALDE", Parent: gremiosIndex},
	{Format: "%s_ZERTIQ", Parent: gremiosIndex},
	{Format: "%s_PINTOR", Parent: gremiosIndex},
	{Format: "%s_CRISTALERIA", Parent: gremiosIndex},
	{Format: "%sCARPINTERIA", Parent: gremiosIndex},
	{Prefix: "07", Format: "07%sFotos", Parent: NoParent},
	{Prefix: "08", Format: "08%sCalidad", Parent: NoParent},
	{Prefix: "09", Format: "09%s_Residuos", Parent: NoParent},
}

// Name returns the concrete folder name for the given project.
func (t Template) Name(project string) string {
	return fmt.Sprintf(t.Format, project)
}

// ResolveNames returns the 17 folder names for project, in creation order.
func ResolveNames(project string) []string {
	names := make([]string, len(Templates))
	for i, t := range Templates {
		names[i] = t.Name(project)
	}
	return names
}

// RelativePaths returns the 17 folder paths for project, relative to the
// base directory, in creation order. Guild entries are nested under their
// parent; everything else sits directly under the project root folder.
func RelativePaths(project string) []string {
	paths := make([]string, len(Templates))
	for i, t := range Templates {
		if t.Parent == NoParent {
			paths[i] = filepath.Join(project, t.Name(project))
			continue
		}
		paths[i] = filepath.Join(paths[t.Parent], t.Name(project))
	}
	return paths
}
