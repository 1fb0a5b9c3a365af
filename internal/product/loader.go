// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package product

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/product-plan/internal/designsystem"
	"github.com/pdiddy/product-plan/pkg/types"
)

// Document names, relative to the product directory.
const (
	OverviewDoc  = "product-overview.md"
	RoadmapDoc   = "product-roadmap.md"
	DataModelDoc = "data-model/data-model.md"
	ShellSpecDoc = "shell/spec.md"

	sectionsDir     = "sections"
	sectionSpecFile = "spec.md"
	designSystemDir = "design-system"
)

// DocumentSource supplies raw document text by slash-separated name.
// A missing document is reported with an error wrapping fs.ErrNotExist.
type DocumentSource interface {
	ReadDocument(name string) ([]byte, error)
}

// sectionLister is implemented by sources that can enumerate section
// directories.
type sectionLister interface {
	SectionIDs() ([]string, error)
}

// DirSource reads documents from a product directory on disk.
type DirSource struct {
	Dir string
}

// ReadDocument reads Dir/name.
func (s DirSource) ReadDocument(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir, filepath.FromSlash(name)))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, nil
}

// SectionIDs lists the directories under Dir/sections, sorted. A missing
// sections directory yields no IDs.
func (s DirSource) SectionIDs() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.Dir, sectionsDir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading sections directory: %w", err)
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			ids = append(ids, e.Name())
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// Extras are the already-structured objects carried through the aggregate
// without being parsed by it.
type Extras struct {
	DataModel    *types.DataModel
	DesignSystem *types.DesignSystem
	Shell        *types.ShellInfo
}

// Assemble parses the overview and roadmap texts and bundles them with the
// passthrough extras. Either text may be empty, which yields a nil record.
func Assemble(overviewText, roadmapText string, extras Extras) types.ProductData {
	return types.ProductData{
		Overview:     ParseOverview(overviewText),
		Roadmap:      ParseRoadmap(roadmapText),
		DataModel:    extras.DataModel,
		DesignSystem: extras.DesignSystem,
		Shell:        extras.Shell,
	}
}

// Loader reads a product plan from a DocumentSource and assembles it.
// Every call re-reads and re-parses; nothing is cached.
type Loader struct {
	Source DocumentSource

	// DesignDir holds the design-token JSON files. Empty skips tokens.
	DesignDir string

	// ShellComponentsDir is checked for shell component sources. Empty
	// means no components.
	ShellComponentsDir string

	Log zerolog.Logger
}

// NewLoader returns a Loader reading from cfg.ProductDir.
func NewLoader(cfg types.PlanConfig, log zerolog.Logger) *Loader {
	dir := cfg.ProductDir
	if dir == "" {
		dir = "product"
	}
	return &Loader{
		Source:             DirSource{Dir: dir},
		DesignDir:          filepath.Join(dir, designSystemDir),
		ShellComponentsDir: cfg.ShellComponentsDir,
		Log:                log,
	}
}

// Load reads every document of the plan and assembles the result. Missing
// documents leave their field nil; other read failures are returned.
func (l *Loader) Load() (types.ProductData, error) {
	overview, err := l.readOptional(OverviewDoc)
	if err != nil {
		return types.ProductData{}, err
	}
	roadmap, err := l.readOptional(RoadmapDoc)
	if err != nil {
		return types.ProductData{}, err
	}
	dataModel, err := l.readOptional(DataModelDoc)
	if err != nil {
		return types.ProductData{}, err
	}
	shell, err := l.loadShell()
	if err != nil {
		return types.ProductData{}, err
	}

	var ds *types.DesignSystem
	if l.DesignDir != "" {
		ds, err = designsystem.Load(l.DesignDir)
		if err != nil {
			return types.ProductData{}, fmt.Errorf("loading design system: %w", err)
		}
	}

	data := Assemble(overview, roadmap, Extras{
		DataModel:    ParseDataModel(dataModel),
		DesignSystem: ds,
		Shell:        shell,
	})

	if overview != "" && data.Overview == nil {
		l.Log.Warn().Str("document", OverviewDoc).Msg("no description, problems or features found")
	}
	if roadmap != "" && data.Roadmap == nil {
		l.Log.Warn().Str("document", RoadmapDoc).Msg("no numbered sections found")
	}
	if data.Roadmap != nil {
		l.Log.Debug().Int("sections", len(data.Roadmap.Sections)).Msg("parsed roadmap")
	}
	return data, nil
}

// Has reports whether the named document exists.
func (l *Loader) Has(name string) bool {
	_, err := l.Source.ReadDocument(name)
	return err == nil
}

// SectionIDs lists section directories when the source supports it.
func (l *Loader) SectionIDs() ([]string, error) {
	lister, ok := l.Source.(sectionLister)
	if !ok {
		return nil, nil
	}
	return lister.SectionIDs()
}

// LoadSection reads and parses sections/<id>/spec.md. A missing spec
// yields SectionData with only the ID set.
func (l *Loader) LoadSection(id string) (types.SectionData, error) {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return types.SectionData{}, fmt.Errorf("invalid section id %q", id)
	}
	raw, err := l.readOptional(path.Join(sectionsDir, id, sectionSpecFile))
	if err != nil {
		return types.SectionData{}, err
	}
	return types.SectionData{
		ID:     id,
		Spec:   raw,
		Parsed: ParseSectionSpec(raw),
	}, nil
}

// readOptional returns the document text, or "" when it does not exist.
func (l *Loader) readOptional(name string) (string, error) {
	data, err := l.Source.ReadDocument(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.Log.Debug().Str("document", name).Msg("document missing")
			return "", nil
		}
		return "", err
	}
	l.Log.Debug().Str("document", name).Int("bytes", len(data)).Msg("document found")
	return string(data), nil
}

func (l *Loader) loadShell() (*types.ShellInfo, error) {
	raw, err := l.readOptional(ShellSpecDoc)
	if err != nil {
		return nil, err
	}
	hasComponents := false
	if l.ShellComponentsDir != "" {
		entries, err := os.ReadDir(l.ShellComponentsDir)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading shell components: %w", err)
		}
		hasComponents = len(entries) > 0
	}

	spec := ParseShellSpec(raw)
	if spec == nil && !hasComponents {
		return nil, nil
	}
	return &types.ShellInfo{Spec: spec, HasComponents: hasComponents}, nil
}
