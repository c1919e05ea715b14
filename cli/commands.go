package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/opencontainers/go-digest"
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/pak-savior/ds"
	"github.com/thanhnguyen2187/pak-savior/logging"
	"github.com/thanhnguyen2187/pak-savior/pak"
	"github.com/zeebo/blake3"
)

const (
	DigestSHA256 = "sha256"
	DigestBLAKE3 = "blake3"
)

type ListedEntry struct {
	pak.Entry
	Digest string `json:"digest,omitempty"`
}

func Digest(algorithm string, data []byte) (string, error) {
	switch algorithm {
	case DigestSHA256:
		return digest.FromBytes(data).String(), nil
	case DigestBLAKE3:
		return fmt.Sprintf("%s:%x", DigestBLAKE3, blake3.Sum256(data)), nil
	default:
		return "", errors.Errorf(`unknown digest algorithm "%s"`, algorithm)
	}
}

func listEntries(loader *pak.Loader, algorithm string) ([]ListedEntry, error) {
	listed := make([]ListedEntry, 0, loader.NumFiles())
	for _, entry := range loader.Entries() {
		item := ListedEntry{Entry: entry}
		if algorithm != "" {
			_, data, err := loader.GetFileByID(entry.Index)
			if err != nil {
				return nil, err
			}
			item.Digest, err = Digest(algorithm, data)
			if err != nil {
				return nil, err
			}
		}
		listed = append(listed, item)
	}
	return listed, nil
}

func RunList(loader *pak.Loader, cmd ListCmd, w io.Writer) error {
	listed, err := listEntries(loader, cmd.Digest)
	if err != nil {
		return errors.Wrap(err, "RunList error")
	}

	if cmd.JSON {
		s, err := ds.DumpJSONIndent(listed)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, s)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, item := range listed {
		line := fmt.Sprintf("%d\t%s\t", item.Index, humanize.Bytes(uint64(item.Size)))
		if item.Digest != "" {
			line += item.Digest + "\t"
		}
		fmt.Fprintln(tw, line+item.Name)
	}
	return tw.Flush()
}

// EntryPath maps an entry name to a path under dir, refusing names that are
// empty, absolute or climb out of dir.
func EntryPath(dir string, name string) (string, error) {
	local := filepath.FromSlash(name)
	if !filepath.IsLocal(local) {
		return "", errors.Errorf(`unsafe entry name "%s"`, name)
	}
	return filepath.Join(dir, local), nil
}

func RunExtract(loader *pak.Loader, cmd ExtractCmd, w io.Writer) error {
	indexes := cmd.Index
	if len(indexes) == 0 {
		indexes = ds.MakeRange(0, loader.NumFiles(), 1)
	}

	written := map[string]bool{}
	for _, index := range indexes {
		name, data, err := loader.GetFileByID(index)
		if err != nil {
			return errors.Wrap(err, "RunExtract error")
		}
		path, err := EntryPath(cmd.To, name)
		if err != nil {
			return errors.Wrapf(err, "RunExtract error: entry %d", index)
		}
		// names may repeat inside one archive
		if written[path] {
			path = fmt.Sprintf("%s~%d", path, index)
		}
		if CheckExistence(path) && !cmd.Force {
			return errors.Errorf(`destination "%s" exists, use --force to overwrite`, path)
		}

		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return errors.Wrap(err, "RunExtract error")
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return errors.Wrapf(err, `RunExtract error writing "%s"`, path)
		}
		written[path] = true
		logging.GetLogger().Info("entry extracted", "index", index, "name", name, "size", len(data))
	}

	_, err := fmt.Fprintf(w, "Done extracting %d entries to %s\n", len(written), cmd.To)
	return err
}

func RunCat(loader *pak.Loader, cmd CatCmd, w io.Writer) error {
	_, data, err := loader.GetFileByID(cmd.Index)
	if err != nil {
		return errors.Wrap(err, "RunCat error")
	}
	_, err = w.Write(data)
	return err
}
