// Command transcode compiles a legacy iControl rule XML document into a
// sheens-spec JSON document, per spec.md §4.7.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rdkcentral/zilker-sdk-sub008/deviceid"
	"github.com/rdkcentral/zilker-sdk-sub008/ruleir"
	"github.com/rdkcentral/zilker-sdk-sub008/transcoder"
	"github.com/rdkcentral/zilker-sdk-sub008/xerrors"
)

func main() {
	os.Exit(run())
}

func run() int {
	cmd := newRootCommand()
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCodeFor(err)
	}
	return 0
}

func newRootCommand() *cobra.Command {
	var (
		inPath      string
		outPath     string
		catalogPath string
	)

	cmd := &cobra.Command{
		Use:   "transcode",
		Short: "Compile a legacy iControl rule XML document into a sheens-spec JSON document",
		RunE: func(_ *cobra.Command, _ []string) error {
			return transcode(inPath, outPath, catalogPath)
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "path to the rule XML document (required)")
	cmd.Flags().StringVar(&outPath, "out", "", "path to write the compiled sheens-spec JSON (default: stdout)")
	cmd.Flags().StringVar(&catalogPath, "device-catalog", "", "optional YAML device-id override catalog")
	if err := cmd.MarkFlagRequired("in"); err != nil {
		panic(err)
	}

	return cmd
}

func transcode(inPath, outPath, catalogPath string) error {
	f, err := os.Open(inPath)
	if err != nil {
		return xerrors.Wrap(xerrors.Invalid, err, "transcode: failed to open %q", inPath)
	}
	defer f.Close()

	rule, err := ruleir.DecodeXML(f)
	if err != nil {
		return err
	}

	mapper, err := resolveMapper(catalogPath)
	if err != nil {
		return err
	}

	doc, err := transcoder.Compile(rule, mapper)
	if err != nil {
		return err
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return xerrors.Wrap(xerrors.InternalError, err, "transcode: failed to serialize spec")
	}

	if outPath == "" {
		_, err = os.Stdout.Write(append(out, '\n'))
		return err
	}
	return os.WriteFile(outPath, append(out, '\n'), 0o644)
}

func resolveMapper(catalogPath string) (deviceid.Mapper, error) {
	if catalogPath == "" {
		return deviceid.DefaultMapper{}, nil
	}
	return deviceid.LoadCatalogMapper(catalogPath)
}

// exitCodeFor maps the core's error Kind to a process exit code distinct
// per category, so callers (e.g. a batch-transcoding pipeline) can branch
// on failure class without parsing stderr text.
func exitCodeFor(err error) int {
	switch xerrors.KindOf(err) {
	case xerrors.Invalid:
		return 2
	case xerrors.Unsupported:
		return 3
	case xerrors.BadMessage:
		return 4
	case xerrors.TooLarge:
		return 5
	default:
		return 1
	}
}
