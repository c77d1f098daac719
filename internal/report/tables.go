// Where: internal/report/tables.go
// What: Aligned column tables for engine resources.
// Why: Show leftover containers, images, volumes, and networks at a glance.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/poruru/dockfresh/internal/engine"
)

const tabPadding = 2

func newTableWriter(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, tabPadding, ' ', 0)
}

// WriteContainersTable renders containers in docker-ps style columns.
func WriteContainersTable(out io.Writer, rows []engine.ContainerRow) {
	w := newTableWriter(out)
	defer w.Flush()

	fmt.Fprintln(w, "CONTAINER ID\tIMAGE\tSTATUS\tNAMES")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row.ID, row.Image, row.Status, row.Names)
	}
}

// WriteImagesTable renders images with IEC-formatted sizes.
func WriteImagesTable(out io.Writer, rows []engine.ImageRow) {
	w := newTableWriter(out)
	defer w.Flush()

	fmt.Fprintln(w, "REPOSITORY\tTAG\tIMAGE ID\tSIZE")
	for _, row := range rows {
		size := humanize.IBytes(uint64(row.Size))
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row.Repository, row.Tag, row.ID, size)
	}
}

// WriteVolumesTable renders volumes in docker-volume-ls style columns.
func WriteVolumesTable(out io.Writer, rows []engine.VolumeRow) {
	w := newTableWriter(out)
	defer w.Flush()

	fmt.Fprintln(w, "DRIVER\tVOLUME NAME")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\n", row.Driver, row.Name)
	}
}

// WriteNetworksTable renders networks in docker-network-ls style columns.
func WriteNetworksTable(out io.Writer, rows []engine.NetworkRow) {
	w := newTableWriter(out)
	defer w.Flush()

	fmt.Fprintln(w, "NETWORK ID\tNAME\tDRIVER\tSCOPE")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row.ID, row.Name, row.Driver, row.Scope)
	}
}
