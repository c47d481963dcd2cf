// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/marquee/internal/query"
)

// argsText joins positional args so unquoted titles work.
func argsText(args []string) string {
	return strings.Join(args, " ")
}

func newRecommendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recommend <title>",
		Short: "List the five titles most similar to a title",
		Long: `Recommend ranks every other catalog entry by cosine similarity of its
TF-IDF vector to the given title and prints the top five. Title matching
ignores case and surrounding whitespace.

Examples:
  marquee recommend "Toy Story"
  marquee recommend heat --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadServices(cmd)
			if err != nil {
				return err
			}

			title := argsText(args)
			titles, err := svc.Index.Recommend(cmd.Context(), title)
			if err != nil {
				return err
			}

			return render(cmd, map[string]interface{}{
				"title":           title,
				"recommendations": titles,
			}, func(w io.Writer) error {
				for i, t := range titles {
					if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, t); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func newSimilarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "similar <title>",
		Short: "List the k most similar titles with their scores",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, _ := cmd.Flags().GetInt("k")
			if k < 1 {
				return fmt.Errorf("-k must be at least 1, got %d", k)
			}

			svc, err := loadServices(cmd)
			if err != nil {
				return err
			}

			matches, err := svc.Index.Similar(cmd.Context(), argsText(args), k)
			if err != nil {
				return err
			}

			return render(cmd, matches, func(w io.Writer) error {
				for i, m := range matches {
					if _, err := fmt.Fprintf(w, "%d. %s (%.4f)\n", i+1, m.Title, m.Score); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().IntP("k", "k", 5, "Number of matches (capped at RECOMMEND_MAX_K)")
	return cmd
}

func newMonthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "month <mes>",
		Short: "Count releases in a Spanish month (enero..diciembre)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadServices(cmd)
			if err != nil {
				return err
			}
			res, err := svc.Queries.FilmsByMonth(args[0])
			if err != nil {
				return err
			}
			return render(cmd, res, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%d movies were released in %s\n", res.Count, res.Month)
				return err
			})
		},
	}
}

func newDayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "day <dia>",
		Short: "Count releases on a Spanish weekday (lunes..domingo)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadServices(cmd)
			if err != nil {
				return err
			}
			res, err := svc.Queries.FilmsByDay(args[0])
			if err != nil {
				return err
			}
			return render(cmd, res, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%d movies were released on %s\n", res.Count, res.Day)
				return err
			})
		},
	}
}

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <title>",
		Short: "Show the release year and popularity of a title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadServices(cmd)
			if err != nil {
				return err
			}
			res, err := svc.Queries.ScoreByTitle(argsText(args))
			if err != nil {
				return err
			}
			return render(cmd, res, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s (%d) has a popularity score of %.2f\n", res.Title, res.ReleaseYear, res.Popularity)
				return err
			})
		},
	}
}

func newVotesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "votes <title>",
		Short: "Show the vote count and average of a title",
		Long: `Votes prints the rating summary of a title. Titles with fewer votes than
QUERY_MIN_VOTES (default 2000) are refused.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadServices(cmd)
			if err != nil {
				return err
			}
			res, err := svc.Queries.VotesByTitle(argsText(args))
			if err != nil {
				return err
			}
			return render(cmd, res, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s (%d) has %d votes averaging %.1f\n", res.Title, res.ReleaseYear, res.VoteCount, res.VoteAverage)
				return err
			})
		},
	}
}

func newActorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "actor <name>",
		Short: "Show film count and return statistics for an actor",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadServices(cmd)
			if err != nil {
				return err
			}
			res, err := svc.Queries.Actor(argsText(args))
			if err != nil {
				return err
			}
			return render(cmd, res, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s appears in %d films with a total return of %.2f (average %.2f)\n",
					res.Actor, res.FilmCount, res.TotalReturn, res.AverageReturn)
				return err
			})
		},
	}
}

func newDirectorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "director <name>",
		Short: "Show the total return and films of a director",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadServices(cmd)
			if err != nil {
				return err
			}
			res, err := svc.Queries.Director(argsText(args))
			if err != nil {
				return err
			}
			return render(cmd, res, func(w io.Writer) error {
				return writeDirector(w, res)
			})
		},
	}
}

func writeDirector(w io.Writer, res query.DirectorStats) error {
	if _, err := fmt.Fprintf(w, "%s: total return %.2f\n", res.Director, res.TotalReturn); err != nil {
		return err
	}
	for _, f := range res.Films {
		released := "unknown"
		if f.ReleaseDate != nil {
			released = f.ReleaseDate.Format("2006-01-02")
		}
		if _, err := fmt.Fprintf(w, "  %s  %s  return %.2f  budget %.0f  revenue %.0f\n",
			released, f.Title, f.Return, f.Budget, f.Revenue); err != nil {
			return err
		}
	}
	return nil
}
