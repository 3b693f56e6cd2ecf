package cmd

import (
	"bytes"

	"github.com/df07/go-sky-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	logger.Noticef("available scenes\n%s", formatSceneList(scene.ListScenes()))
	return nil
}

func formatSceneList(scenes []scene.SceneInfo) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Description"})
	for _, info := range scenes {
		table.Append([]string{info.ID, info.Description})
	}
	table.SetFooter([]string{"", "or any .json scene file"})

	table.Render()
	return buf.String()
}
