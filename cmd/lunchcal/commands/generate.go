package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Scrape the menu and generate the weekly calendar",
		RunE: func(cmd *cobra.Command, _ []string) error {
			url, _ := cmd.Flags().GetString("url")
			if url == "" {
				url = c.components.Config.Scraper.MenuURL
			}
			offset, _ := cmd.Flags().GetInt("week-offset")
			pdf, _ := cmd.Flags().GetBool("pdf")
			recipient, _ := cmd.Flags().GetString("email")

			ctx := cmd.Context()
			application := c.components.App

			menu, err := application.ScrapeWeek(ctx, url, offset)
			if err != nil {
				return err
			}

			weekID := application.CurrentWeek(offset)
			calendarURL, err := application.GenerateCalendar(ctx, menu, weekID)
			if err != nil {
				return err
			}
			fmt.Println(calendarURL)

			var pdfURL string
			if pdf || recipient != "" {
				pdfURL, err = application.ExportPDF(ctx, menu, weekID)
				if err != nil {
					return err
				}
				fmt.Println(pdfURL)
			}

			if recipient != "" {
				if err := application.SendEmail(recipient, calendarURL, pdfURL, weekID); err != nil {
					return err
				}
				c.components.Logger.Info(fmt.Sprintf("menu for %s mailed to %s", weekID, recipient))
			}
			return nil
		},
	}
	cmd.Flags().String("url", "", "Menu page URL (defaults to scraper.menu_url from config)")
	cmd.Flags().Int("week-offset", 0, "Week offset relative to the current week")
	cmd.Flags().Bool("pdf", false, "Also export the printable PDF")
	cmd.Flags().String("email", "", "Send the calendar link to this recipient")
	return cmd
}

func (c *CLI) newTodayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Scrape the menu and print today's item",
		RunE: func(cmd *cobra.Command, _ []string) error {
			url, _ := cmd.Flags().GetString("url")
			if url == "" {
				url = c.components.Config.Scraper.MenuURL
			}

			item, err := c.components.App.ScrapeToday(cmd.Context(), url)
			if err != nil {
				return err
			}

			fmt.Printf("%s (%s): %s\n", capitalizedDay(item.Day), item.Date, item.Name)
			return nil
		},
	}
	cmd.Flags().String("url", "", "Menu page URL (defaults to scraper.menu_url from config)")
	return cmd
}

// capitalizedDay uppercases a lowercase weekday key for display.
func capitalizedDay(day string) string {
	if day == "" || day[0] < 'a' || day[0] > 'z' {
		return day
	}
	return string(day[0]-'a'+'A') + day[1:]
}
