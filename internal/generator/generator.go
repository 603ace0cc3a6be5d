package generator

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/quickapp/quickapp/internal/model"
)

// Fixed platform constants emitted into the build descriptor. No per-script
// inference happens here.
const (
	compileSDK = 34
	minSDK     = 24
	targetSDK  = 34
)

var (
	manifestTmpl = template.Must(template.New(model.ArtifactManifest).Parse(manifestTemplate))
	activityTmpl = template.Must(template.New(model.ArtifactActivitySource).Parse(activityTemplate))
	gradleTmpl   = template.Must(template.New(model.ArtifactBuildDescriptor).Parse(buildDescriptorTemplate))
)

type screenData struct {
	Index       int
	Name        string
	NameLiteral string
	Body        string
}

type activityData struct {
	PackageName    string
	ScreenNameList string
	Screens        []screenData
}

type manifestData struct {
	PackageName string
	Label       string
}

type gradleData struct {
	PackageName string
	CompileSDK  int
	MinSDK      int
	TargetSDK   int
}

// Generate transforms a validated app and its script path into the build
// artifacts and the derived package identity. It is a pure function:
// identical inputs reproduce every artifact byte for byte.
func Generate(app *model.AppDeclaration, scriptPath string) (model.BuildArtifact, model.PackageIdentity, error) {
	if app == nil || len(app.Screens) == 0 {
		// Generation on an unvalidated model is a defect in the caller.
		return nil, model.PackageIdentity{}, fmt.Errorf("generator invoked on unvalidated model")
	}

	identity := model.NewPackageIdentity(scriptPath)
	artifacts := make(model.BuildArtifact, 3)

	manifest, err := render(manifestTmpl, manifestData{
		PackageName: identity.PackageName,
		Label:       xmlEscape(app.Name),
	})
	if err != nil {
		return nil, model.PackageIdentity{}, err
	}
	artifacts[model.ArtifactManifest] = manifest

	activity, err := render(activityTmpl, activityFor(app, identity))
	if err != nil {
		return nil, model.PackageIdentity{}, err
	}
	artifacts[model.ArtifactActivitySource] = activity

	gradle, err := render(gradleTmpl, gradleData{
		PackageName: identity.PackageName,
		CompileSDK:  compileSDK,
		MinSDK:      minSDK,
		TargetSDK:   targetSDK,
	})
	if err != nil {
		return nil, model.PackageIdentity{}, err
	}
	artifacts[model.ArtifactBuildDescriptor] = gradle

	return artifacts, identity, nil
}

func activityFor(app *model.AppDeclaration, identity model.PackageIdentity) activityData {
	data := activityData{PackageName: identity.PackageName}

	literals := make([]string, len(app.Screens))
	for i, scr := range app.Screens {
		literal := kotlinString(scr.Name)
		literals[i] = literal
		data.Screens = append(data.Screens, screenData{
			Index:       i,
			Name:        scr.Name,
			NameLiteral: literal,
			Body:        renderScreenBody(scr),
		})
	}
	data.ScreenNameList = strings.Join(literals, ", ")
	return data
}

func render(tmpl *template.Template, data interface{}) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", tmpl.Name(), err)
	}
	return b.String(), nil
}
