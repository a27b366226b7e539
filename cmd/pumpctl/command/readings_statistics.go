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

var (
	statisticsDeviceId uint64
	statisticsStart    string
	statisticsEnd      string
)

var statisticsCmd = &cobra.Command{
	Use:   "statistics",
	Short: "Compute glucose statistics for a device over a time window",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := time.Parse(time.RFC3339, statisticsStart)
		if err != nil {
			return fmt.Errorf("invalid start time: %w", err)
		}
		end, err := time.Parse(time.RFC3339, statisticsEnd)
		if err != nil {
			return fmt.Errorf("invalid end time: %w", err)
		}

		return Run(func(service readings.Service) error {
			statistics, err := service.Statistics(context.Background(), statisticsDeviceId, start, end)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Device\t%d (%s)\n", statistics.DeviceId, statistics.DeviceSerialNo)
			fmt.Fprintf(w, "Patient\t%s\n", statistics.PatientName)
			fmt.Fprintf(w, "Window\t%s .. %s\n", statistics.StartTime.Format(time.RFC3339), statistics.EndTime.Format(time.RFC3339))
			fmt.Fprintf(w, "Readings\t%d\n", statistics.TotalReadings)
			fmt.Fprintf(w, "Average\t%.2f\n", statistics.AverageGlucoseLevel)
			fmt.Fprintf(w, "Lowest\t%.2f\n", statistics.LowestReading)
			fmt.Fprintf(w, "Highest\t%.2f\n", statistics.HighestReading)
			fmt.Fprintf(w, "Std deviation\t%.2f\n", statistics.StandardDeviation)
			fmt.Fprintf(w, "Low readings\t%d\n", statistics.LowReadingsCount)
			fmt.Fprintf(w, "High readings\t%d\n", statistics.HighReadingsCount)
			return w.Flush()
		})
	},
}

func init() {
	statisticsCmd.Flags().Uint64Var(&statisticsDeviceId, "device", 0, "Device id")
	statisticsCmd.Flags().StringVar(&statisticsStart, "start", "", "Window start (RFC 3339)")
	statisticsCmd.Flags().StringVar(&statisticsEnd, "end", "", "Window end (RFC 3339)")
	_ = statisticsCmd.MarkFlagRequired("device")
	_ = statisticsCmd.MarkFlagRequired("start")
	_ = statisticsCmd.MarkFlagRequired("end")

	readingsCmd.AddCommand(statisticsCmd)
}
