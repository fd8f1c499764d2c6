package modelconv

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess           = 0  // Every folder converted, skipped or reported empty
	ExitGeneralError      = 1  // Unknown or unclassified error
	ExitUsageError        = 2  // CLI usage error (unknown flags, extra args)
	ExitPanic             = 3  // Internal panic (unexpected crash)
	ExitConfigError       = 10 // Invalid configuration file or flag values
	ExitFilesystemError   = 20 // Models directory missing or unreadable, write failed
	ExitExternalToolError = 21 // Scene compiler failed or wrote no draft
)

const (
	// DefaultModelsDir is the root scanned when no models directory is configured.
	DefaultModelsDir = "./3DModels"

	// DefaultOutputDir is where artifacts are written when no output directory is configured.
	DefaultOutputDir = "./ModelDefinitions"

	// ComponentExtension is the extension of every generated artifact.
	ComponentExtension = ".tsx"

	// PrimarySceneFile is the preferred scene file inside a model folder (JSON glTF).
	PrimarySceneFile = "scene.gltf"

	// SecondarySceneFile is used when no PrimarySceneFile exists (binary glTF).
	SecondarySceneFile = "scene.glb"

	// CompositeNameSeparator joins parent and child folder names for nested targets.
	CompositeNameSeparator = "-"
)

// DefaultCompilerCommand is the command prefix used to invoke gltfjsx.
// The input path and flags are appended per invocation.
var DefaultCompilerCommand = []string{"npx", "gltfjsx"}
