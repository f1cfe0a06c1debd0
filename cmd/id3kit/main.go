// Command id3kit inspects and edits ID3 tags in MP3 files.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/simonhull/id3kit"
	"github.com/simonhull/id3kit/id3"
)

var rootCmd = &cobra.Command{
	Use:           "id3kit",
	Short:         "Inspect and edit ID3 tags in MP3 files",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var showCmd = &cobra.Command{
	Use:   "show <file> [file...]",
	Short: "Print the tags of one or more files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := id3kit.OpenMany(cmd.Context(), args...)
		if err != nil {
			return err
		}
		defer func() {
			for _, f := range files {
				f.Close()
			}
		}()

		for i, f := range files {
			if i > 0 {
				fmt.Println()
			}
			printFile(cmd, f)
		}
		return nil
	},
}

func printFile(cmd *cobra.Command, f *id3kit.File) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s (%s, %s)\n", f.Path, f.Format, humanize.Bytes(uint64(f.Size)))
	if f.Header != nil {
		fmt.Fprintf(out, "  tag: ID3v2.%d.%d, %s\n",
			f.Header.Version[0], f.Header.Version[1], humanize.Bytes(uint64(f.Header.FullSize())))
	} else {
		fmt.Fprintln(out, "  tag: ID3v1 only")
	}

	for _, key := range f.Tag.Keys() {
		for _, frame := range f.Tag.GetAll(key) {
			fmt.Fprintf(out, "  %-24s %s\n", key, frame.String())
		}
	}

	for _, w := range f.Warnings {
		fmt.Fprintf(out, "  warning: %s\n", w)
	}
}

var setFlags = struct {
	title   string
	artist  string
	album   string
	genre   string
	comment string
	track   string
	year    string
}{}

var setCmd = &cobra.Command{
	Use:   "set <file> [file...]",
	Short: "Set tag fields and save",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			if err := setTags(path); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", path)
		}
		return nil
	},
}

func setTags(path string) error {
	file, err := id3kit.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	setText := func(id, value string) {
		if value == "" {
			return
		}
		file.Tag.SetAll(id, []id3.Frame{
			&id3.TextFrame{ID: id, Encoding: id3.EncodingUTF8, Text: []string{value}},
		})
	}

	setText("TIT2", setFlags.title)
	setText("TPE1", setFlags.artist)
	setText("TALB", setFlags.album)
	setText("TCON", setFlags.genre)
	setText("TRCK", setFlags.track)
	setText("TDRC", setFlags.year)

	if setFlags.comment != "" {
		file.Tag.SetAll("COMM::eng", []id3.Frame{
			&id3.CommentFrame{ID: "COMM", Encoding: id3.EncodingUTF8, Lang: "eng", Text: setFlags.comment},
		})
	}

	return file.Save()
}

var stripCmd = &cobra.Command{
	Use:   "strip <file> [file...]",
	Short: "Remove all ID3 tags, leaving only the audio",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			if err := id3kit.Strip(path); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "stripped %s\n", path)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print id3kit version information",
	Run: func(cmd *cobra.Command, _ []string) {
		info := id3kit.GetVersionInfo()
		fmt.Fprintf(cmd.OutOrStdout(), "id3kit %s (commit %s, built %s, %s)\n",
			info.Version, info.GitCommit, info.BuildTime, info.GoVersion)
	},
	DisableFlagsInUseLine: true,
}

func init() {
	setCmd.Flags().StringVar(&setFlags.title, "title", "", "set the title (TIT2)")
	setCmd.Flags().StringVar(&setFlags.artist, "artist", "", "set the artist (TPE1)")
	setCmd.Flags().StringVar(&setFlags.album, "album", "", "set the album (TALB)")
	setCmd.Flags().StringVar(&setFlags.genre, "genre", "", "set the genre (TCON)")
	setCmd.Flags().StringVar(&setFlags.comment, "comment", "", "set the comment (COMM)")
	setCmd.Flags().StringVar(&setFlags.track, "track", "", "set the track number (TRCK)")
	setCmd.Flags().StringVar(&setFlags.year, "year", "", "set the recording year (TDRC)")

	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(stripCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
