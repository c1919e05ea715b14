package cli

import (
	"io"
	"os"
	"sort"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/thanhnguyen2187/pak-savior/ds"
	"github.com/thanhnguyen2187/pak-savior/logging"
	"github.com/thanhnguyen2187/pak-savior/pak"
	"github.com/thanhnguyen2187/pak-savior/ui"
	"golang.org/x/text/encoding/charmap"
)

type (
	Args struct {
		LogLevel  string `arg:"--log-level,env:PAK_LOG_LEVEL" default:"warn" help:"debug, info, warn or error"`
		LogFormat string `arg:"--log-format,env:PAK_LOG_FORMAT" default:"text" help:"text or json"`
		Charmap   string `arg:"env:PAK_CHARMAP" help:"code page of entry names" placeholder:"windows-1252"`
		Mmap      bool   `arg:"env:PAK_MMAP" help:"memory-map the archive instead of reading the file"`

		List    *ListCmd    `arg:"subcommand:list" help:"list the entries of an archive"`
		Extract *ExtractCmd `arg:"subcommand:extract" help:"write entries into a folder"`
		Cat     *CatCmd     `arg:"subcommand:cat" help:"write one entry to stdout"`
		Browse  *BrowseCmd  `arg:"subcommand:browse" help:"browse entries interactively"`
	}
	ListCmd struct {
		Archive string `arg:"positional,required" placeholder:"PAK"`
		JSON    bool   `arg:"--json" help:"print entries as JSON"`
		Digest  string `help:"add a digest column: sha256 or blake3" placeholder:"ALGO"`
	}
	ExtractCmd struct {
		Archive string `arg:"positional,required" placeholder:"PAK"`
		To      string `arg:"required" help:"destination folder" placeholder:"DIR"`
		Index   []int  `arg:"-i,--index,separate" help:"entry to extract, repeatable; all entries by default" placeholder:"N"`
		Force   bool   `help:"overwrite existing files"`
	}
	CatCmd struct {
		Archive string `arg:"positional,required" placeholder:"PAK"`
		Index   int    `arg:"-i,--index,required" help:"entry to print" placeholder:"N"`
	}
	BrowseCmd struct {
		Archive string `arg:"positional,required" placeholder:"PAK"`
	}
)

var charmapByName = map[string]*charmap.Charmap{
	"cp437":        charmap.CodePage437,
	"iso-8859-1":   charmap.ISO8859_1,
	"iso-8859-15":  charmap.ISO8859_15,
	"koi8-r":       charmap.KOI8R,
	"windows-1251": charmap.Windows1251,
	"windows-1252": charmap.Windows1252,
}

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Ruin has come to our pak files.\n",
			"A CLI utility to list and extract the entries of PACK archives.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

func LookupCharmap(name string) (*charmap.Charmap, error) {
	if name == "" {
		return nil, nil
	}
	cm, ok := charmapByName[strings.ToLower(name)]
	if !ok {
		names := lo.Keys(charmapByName)
		sort.Strings(names)
		return nil, errors.Errorf(`unknown charmap "%s", expected one of %s`, name, strings.Join(names, ", "))
	}
	return cm, nil
}

func OpenArchive(args Args, path string) (*pak.Loader, error) {
	cm, err := LookupCharmap(args.Charmap)
	if err != nil {
		return nil, err
	}
	opts := []pak.Option{
		pak.WithLogger(logging.GetLogger()),
		pak.WithNameCharmap(cm),
	}
	if args.Mmap {
		return pak.OpenMmap(path, opts...)
	}
	return pak.Open(path, opts...)
}

func archivePath(args Args) string {
	switch {
	case args.List != nil:
		return args.List.Archive
	case args.Extract != nil:
		return args.Extract.Archive
	case args.Cat != nil:
		return args.Cat.Archive
	case args.Browse != nil:
		return args.Browse.Archive
	}
	return ""
}

// Run executes the chosen subcommand, writing its output to stdout.
func Run(args Args, stdout io.Writer) error {
	path := archivePath(args)
	if path == "" {
		return errors.New("no subcommand given")
	}
	loader, err := OpenArchive(args, path)
	if err != nil {
		return err
	}
	defer func() {
		if err := loader.Close(); err != nil {
			logging.GetLogger().Warn("error closing archive", "path", path, "error", err)
		}
	}()

	switch {
	case args.List != nil:
		return RunList(loader, *args.List, stdout)
	case args.Extract != nil:
		return RunExtract(loader, *args.Extract, stdout)
	case args.Cat != nil:
		return RunCat(loader, *args.Cat, stdout)
	case args.Browse != nil:
		return ui.Start(loader)
	}
	return ds.ErrUnreachableCode{Caller: "cli.Run"}
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)
	if parser.Subcommand() == nil {
		parser.WriteHelp(os.Stdout)
		os.Exit(2)
	}

	level, err := logging.ParseLevel(args.LogLevel)
	if err != nil {
		parser.Fail(err.Error())
	}
	format, err := logging.ParseFormat(args.LogFormat)
	if err != nil {
		parser.Fail(err.Error())
	}
	logger := logging.InitLogger(os.Stderr, level, format)

	if err := Run(args, os.Stdout); err != nil {
		logger.Error("command failed", "archive", archivePath(args), "error", err)
		os.Exit(1)
	}
}
