package domain

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"classmark.dev/pkg/classmark/internal/adapter"
	"classmark.dev/pkg/classmark/internal/controller"
	m "classmark.dev/pkg/classmark/internal/model"
)

// ReportsFileName is the summary file written next to the artifacts.
const ReportsFileName = "reports.yaml"

const artifactFileMode = 0o644
const artifactDirMode = 0o750

// AnnotateArgs configures a full annotation run.
type AnnotateArgs struct {
	Paths   []m.Path
	Exclude []string
	Output  m.Path
	Threads int
	Config  m.Config
}

// EstimateArgs configures a classification dry run.
type EstimateArgs struct {
	Paths   []m.Path
	Exclude []string
	Config  m.Config
}

// ViewArgs configures viewing previously written reports.
type ViewArgs struct {
	Output m.Path
}

// Workflow drives class documents through the intercepted builder pipeline.
type Workflow interface {
	// Annotate runs the documents through the pipeline and writes text and
	// binary artifacts plus a report summary to the output directory.
	Annotate(ctx context.Context, args AnnotateArgs) error

	// Estimate classifies the documents without writing artifacts.
	Estimate(ctx context.Context, args EstimateArgs) error

	// View displays the report summary of a previous Annotate run.
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	fs        adapter.DocumentFSAdapter
	documents adapter.DocumentAdapter
	sink      adapter.DiagnosticSink
	ui        controller.UI
}

// NewWorkflow creates a Workflow instance wired to the provided collaborators.
func NewWorkflow(
	fs adapter.DocumentFSAdapter,
	documents adapter.DocumentAdapter,
	sink adapter.DiagnosticSink,
	ui controller.UI,
) Workflow {
	return &workflow{
		fs:        fs,
		documents: documents,
		sink:      sink,
		ui:        ui,
	}
}

// Annotate implements Workflow.
func (w *workflow) Annotate(ctx context.Context, args AnnotateArgs) error {
	session, err := NewSession(args.Config, w.sink)
	if err != nil {
		return err
	}

	files, err := w.collectFiles(args.Paths, args.Exclude)
	if err != nil {
		return err
	}

	w.ui.DisplayDocumentCount(ctx, len(files))

	if err := w.fs.MkdirAll(args.Output, artifactDirMode); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", args.Output, err)
	}

	reports, err := w.processFiles(ctx, files, session, args.Threads, &args.Output)
	if err != nil {
		return err
	}

	content, err := yaml.Marshal(reports)
	if err != nil {
		return fmt.Errorf("failed to encode reports: %w", err)
	}

	reportsPath := w.fs.JoinPath(string(args.Output), ReportsFileName)
	if err := w.fs.WriteFile(reportsPath, content, artifactFileMode); err != nil {
		return fmt.Errorf("failed to write %s: %w", reportsPath, err)
	}

	return w.ui.DisplayReports(ctx, reports)
}

// Estimate implements Workflow.
func (w *workflow) Estimate(ctx context.Context, args EstimateArgs) error {
	session, err := NewSession(args.Config, w.sink)
	if err != nil {
		return err
	}

	files, err := w.collectFiles(args.Paths, args.Exclude)
	if err != nil {
		return err
	}

	w.ui.DisplayDocumentCount(ctx, len(files))

	reports, err := w.processFiles(ctx, files, session, 1, nil)
	if err != nil {
		return err
	}

	return w.ui.DisplayReports(ctx, reports)
}

// View implements Workflow.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	reportsPath := w.fs.JoinPath(string(args.Output), ReportsFileName)

	content, err := w.fs.ReadFile(reportsPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", reportsPath, err)
	}

	var reports []m.ClassReport
	if err := yaml.Unmarshal(content, &reports); err != nil {
		return fmt.Errorf("failed to decode %s: %w", reportsPath, err)
	}

	return w.ui.DisplayReports(ctx, reports)
}

// processFiles runs each document file through its own intercepted factory.
// Files are independent compilation units, so they may proceed in parallel;
// builders are never shared between units. A nil output skips artifact
// writing (dry run).
func (w *workflow) processFiles(
	ctx context.Context,
	files []m.Path,
	session *Session,
	threads int,
	output *m.Path,
) ([]m.ClassReport, error) {
	if threads <= 0 {
		threads = 1
	}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	results := make([][]m.ClassReport, len(files))

	for index, file := range files {
		index, file := index, file
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			reports, err := w.processFile(file, session, output)
			if err != nil {
				return err
			}

			results[index] = reports

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	var reports []m.ClassReport
	for _, fileReports := range results {
		reports = append(reports, fileReports...)
	}

	return reports, nil
}

func (w *workflow) processFile(file m.Path, session *Session, output *m.Path) ([]m.ClassReport, error) {
	content, err := w.fs.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}

	documents, err := w.documents.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", file, err)
	}

	factory := NewInterceptingFactory(adapter.NewRecordingFactory(adapter.BuildFull), session)

	defer func() {
		_ = factory.Close()
	}()

	reports := make([]m.ClassReport, 0, len(documents))

	for _, document := range documents {
		builder := factory.NewBuilder(document.Origin)

		if err := ReplayDocument(builder, document); err != nil {
			return nil, fmt.Errorf("failed to build %s from %s: %w", document.Name, file, err)
		}

		if output != nil {
			if err := w.writeArtifacts(factory, builder, document.Name, *output); err != nil {
				return nil, err
			}
		}

		reports = append(reports, buildReport(file, document))
	}

	return reports, nil
}

func (w *workflow) writeArtifacts(
	factory adapter.ClassBuilderFactory,
	builder adapter.ClassBuilder,
	className string,
	output m.Path,
) error {
	text, err := factory.AsText(builder)
	if err != nil {
		return fmt.Errorf("failed to render %s as text: %w", className, err)
	}

	raw, err := factory.AsBytes(builder)
	if err != nil {
		return fmt.Errorf("failed to render %s as bytes: %w", className, err)
	}

	base := artifactBaseName(className)

	textPath := w.fs.JoinPath(string(output), base+".txt")
	if err := w.fs.WriteFile(textPath, []byte(text), artifactFileMode); err != nil {
		return fmt.Errorf("failed to write %s: %w", textPath, err)
	}

	binaryPath := w.fs.JoinPath(string(output), base+".bin")
	if err := w.fs.WriteFile(binaryPath, raw, artifactFileMode); err != nil {
		return fmt.Errorf("failed to write %s: %w", binaryPath, err)
	}

	return nil
}

// artifactBaseName flattens an internal class name into a file name.
func artifactBaseName(className string) string {
	return strings.ReplaceAll(className, "/", ".")
}

// ReplayDocument feeds one class document through a builder as the event
// stream a front end would produce.
func ReplayDocument(builder adapter.ClassBuilder, document m.ClassDocument) error {
	info := m.ClassInfo{
		Version:    document.Version,
		Access:     m.ParseAccess(document.Access),
		Name:       document.Name,
		Signature:  document.Signature,
		SuperName:  document.Super,
		Interfaces: document.Interfaces,
	}

	if err := builder.BeginClass(document.Origin, info); err != nil {
		return err
	}

	if document.Source != "" {
		if err := builder.Source(document.Source); err != nil {
			return err
		}
	}

	for _, field := range document.Fields {
		fieldInfo := m.FieldInfo{
			Access:     m.ParseAccess(field.Access),
			Name:       field.Name,
			Descriptor: field.Descriptor,
			Signature:  field.Signature,
		}

		if err := builder.NewField(field.Origin, fieldInfo); err != nil {
			return err
		}
	}

	for _, method := range document.Methods {
		methodInfo := m.MethodInfo{
			Access:     m.ParseAccess(method.Access),
			Name:       method.Name,
			Descriptor: method.Descriptor,
			Signature:  method.Signature,
			Exceptions: method.Exceptions,
		}

		handle, err := builder.NewMethod(method.Origin, methodInfo)
		if err != nil {
			return err
		}

		if err := handle.Done(); err != nil {
			return err
		}
	}

	return builder.Done()
}

func buildReport(file m.Path, document m.ClassDocument) m.ClassReport {
	report := m.ClassReport{
		Document:  file,
		ClassName: document.Name,
		Methods:   make([]m.MethodMark, 0, len(document.Methods)),
	}

	for _, method := range document.Methods {
		rule := Classify(method.Origin)

		report.Methods = append(report.Methods, m.MethodMark{
			Name:       method.Name,
			Descriptor: method.Descriptor,
			Marked:     rule != RuleNone,
			Reason:     string(rule),
		})
	}

	return report
}

// collectFiles expands paths into the list of document files to process.
// Directories are walked recursively for .yaml/.yml files; exclude patterns
// are applied as regular expressions against the full path.
func (w *workflow) collectFiles(paths []m.Path, exclude []string) ([]m.Path, error) {
	if len(paths) == 0 {
		paths = []m.Path{"."}
	}

	patterns, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	seen := make(map[m.Path]struct{})

	var files []m.Path

	for _, path := range paths {
		info, err := w.fs.FileInfo(path)
		if err != nil {
			return nil, fmt.Errorf("path error: %w", err)
		}

		if !info.IsDir() {
			if excluded(string(path), patterns) {
				continue
			}

			if _, ok := seen[path]; !ok {
				seen[path] = struct{}{}

				files = append(files, path)
			}

			continue
		}

		walkErr := w.fs.Walk(path, true, func(walked string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() || !isDocumentFile(walked) || excluded(walked, patterns) {
				return nil
			}

			walkedPath := m.Path(walked)
			if _, ok := seen[walkedPath]; !ok {
				seen[walkedPath] = struct{}{}

				files = append(files, walkedPath)
			}

			return nil
		})
		if walkErr != nil {
			return nil, walkErr
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files, nil
}

func compileExcludes(exclude []string) ([]*regexp.Regexp, error) {
	patterns := make([]*regexp.Regexp, 0, len(exclude))

	for _, raw := range exclude {
		pattern, err := regexp.Compile(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", raw, err)
		}

		patterns = append(patterns, pattern)
	}

	return patterns, nil
}

func excluded(path string, patterns []*regexp.Regexp) bool {
	for _, pattern := range patterns {
		if pattern.MatchString(path) {
			return true
		}
	}

	return false
}

func isDocumentFile(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".yaml" || ext == ".yml"
}
