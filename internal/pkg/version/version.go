package version

// Value is set from the build, for example:
// go build -ldflags "-X github.com/mapsbench/mapsload/internal/pkg/version.Value=1.2.3"
var Value = "dev"

func Version() string {
	return Value
}
