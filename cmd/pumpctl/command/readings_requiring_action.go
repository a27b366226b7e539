package command

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/insulinpump/readings/readings"
)

var requiringActionCmd = &cobra.Command{
	Use:   "requiring-action",
	Short: "List readings that require clinical action",
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(func(service readings.Service) error {
			list, err := service.ListRequiringAction(context.Background())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDEVICE\tGLUCOSE\tSTATUS\tTIMESTAMP\tPATIENT")
			for _, reading := range list {
				patientName := readings.UnassignedPatientName
				if reading.Patient != nil {
					patientName = reading.Patient.Name
				}
				fmt.Fprintf(
					w, "%s\t%d\t%.1f\t%s\t%s\t%s\n",
					reading.Id.Hex(),
					reading.DeviceId,
					reading.GlucoseLevel,
					reading.Status,
					reading.Timestamp.Format(time.RFC3339),
					patientName,
				)
			}
			return w.Flush()
		})
	},
}

func init() {
	readingsCmd.AddCommand(requiringActionCmd)
}
