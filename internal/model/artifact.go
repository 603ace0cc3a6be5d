package model

// Artifact names emitted by the generator.
const (
	ArtifactManifest        = "manifest"
	ArtifactActivitySource  = "activity-source"
	ArtifactBuildDescriptor = "build-descriptor"
)

// BuildArtifact maps artifact names to their generated text. Artifacts are
// pure functions of the validated AppDeclaration and PackageIdentity:
// identical inputs produce byte-identical outputs.
type BuildArtifact map[string]string
