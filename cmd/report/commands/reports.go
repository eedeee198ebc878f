package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"catalogcmp/internal/analytics"
	"catalogcmp/internal/model"
	"catalogcmp/internal/showcase"
)

func statsRow(first, second string, s analytics.Stats) []string {
	return []string{
		first, second,
		fmt.Sprint(s.Products), fmt.Sprint(s.Brands),
		money(s.AvgPrice), money(s.MedianPrice), money(s.MinPrice), money(s.MaxPrice),
		num(s.AvgRating), num(s.MedianRating), num(s.AvgReviews),
	}
}

var statsHeaders = []string{"PRODUCTS", "BRANDS", "AVG PRICE", "MEDIAN PRICE", "MIN", "MAX", "AVG RATING", "MEDIAN RATING", "AVG REVIEWS"}

func newOverviewCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Per-source and combined headline metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o := analytics.BuildOverview(st.data.Table)
			out := cmd.OutOrStdout()
			if st.format == formatJSON {
				return writeJSON(out, o)
			}
			var rows [][]string
			for _, g := range o.Sources {
				rows = append(rows, statsRow(string(g.Source), st.data.Label(g.Source), g.Stats))
			}
			rows = append(rows, statsRow("*", "Combined", o.Combined))
			return writeTable(out, append([]string{"SOURCE", "LABEL"}, statsHeaders...), rows)
		},
	}
}

func newSummaryCommand(st *state) *cobra.Command {
	var group string
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Aggregate metrics grouped by none, source or brand",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := analytics.ParseGroupBy(group)
			if err != nil {
				return err
			}
			rows, err := analytics.Aggregate(st.data.Table, g)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if st.format == formatJSON {
				return writeJSON(out, rows)
			}
			var lines [][]string
			for _, r := range rows {
				src := string(r.Source)
				if src == "" {
					src = "*"
				}
				lines = append(lines, statsRow(src, r.Brand, r.Stats))
			}
			return writeTable(out, append([]string{"SOURCE", "BRAND"}, statsHeaders...), lines)
		},
	}
	cmd.Flags().StringVarP(&group, "group", "g", string(analytics.GroupSource), "grouping: none, source or brand")
	return cmd
}

func newDistributionCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:       "distribution price|rating",
		Short:     "Per-source share of products in each price or rating bin",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"price", "rating"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows []analytics.DistributionRow
			if args[0] == "price" {
				rows = analytics.PriceDistribution(st.data.Table)
			} else {
				rows = analytics.RatingDistribution(st.data.Table)
			}
			return printDistribution(cmd, st, rows)
		},
	}
}

func printDistribution(cmd *cobra.Command, st *state, rows []analytics.DistributionRow) error {
	out := cmd.OutOrStdout()
	if st.format == formatJSON {
		return writeJSON(out, rows)
	}
	var lines [][]string
	for _, r := range rows {
		lines = append(lines, []string{string(r.Source), st.data.Label(r.Source), r.Bin, r.Range, fmt.Sprint(r.Count), pct(r.Percent)})
	}
	return writeTable(out, []string{"SOURCE", "LABEL", "BIN", "RANGE", "COUNT", "PERCENT"}, lines)
}

func newRatingByPriceCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "rating-by-price",
		Short: "Rating spread within each price bin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := analytics.RatingByPrice(st.data.Table)
			out := cmd.OutOrStdout()
			if st.format == formatJSON {
				return writeJSON(out, rows)
			}
			var lines [][]string
			for _, r := range rows {
				lines = append(lines, []string{
					string(r.Source), r.Bin, fmt.Sprint(r.Count),
					num(r.Min), num(r.Q1), num(r.Median), num(r.Q3), num(r.Max),
				})
			}
			return writeTable(out, []string{"SOURCE", "BIN", "COUNT", "MIN", "Q1", "MEDIAN", "Q3", "MAX"}, lines)
		},
	}
}

func newBrandsCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "brands",
		Short: "Brands carried by both sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := analytics.ListBrands(st.data.Table)
			out := cmd.OutOrStdout()
			if st.format == formatJSON {
				return writeJSON(out, list)
			}
			if list.NoCommonBrands {
				warn(out, "No common brands between %s and %s.", st.data.Label(model.SourceA), st.data.Label(model.SourceB))
				return nil
			}
			for _, b := range list.Brands {
				fmt.Fprintln(out, b)
			}
			return nil
		},
	}
}

func newBrandCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "brand NAME",
		Short: "Compare one common brand across both sources",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmp, err := analytics.CompareBrand(st.data.Table, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if st.format == formatJSON {
				return writeJSON(out, cmp)
			}
			title(out, cmp.Brand)
			var lines [][]string
			for _, m := range cmp.Sources {
				lines = append(lines, []string{string(m.Source), st.data.Label(m.Source), fmt.Sprint(m.Products), money(m.AvgPrice), num(m.AvgRating)})
			}
			if err := writeTable(out, []string{"SOURCE", "LABEL", "PRODUCTS", "AVG PRICE", "AVG RATING"}, lines); err != nil {
				return err
			}
			fmt.Fprintln(out)
			return printDistribution(cmd, st, cmp.PriceDistribution)
		},
	}
}

func newProductsCommand(st *state) *cobra.Command {
	var (
		source   string
		skin     []string
		hair     []string
		minPrice float64
		maxPrice float64
	)
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Product gallery with match tiers for the selected skin and hair types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := showcase.Query{
				Source:    model.Source(strings.ToUpper(source)),
				SkinTypes: skin,
				HairTypes: hair,
			}
			if !q.Source.Valid() {
				return fmt.Errorf("unknown source %q (want A or B)", source)
			}
			if cmd.Flags().Changed("min-price") {
				q.MinPrice = model.Float(minPrice)
			}
			if cmd.Flags().Changed("max-price") {
				q.MaxPrice = model.Float(maxPrice)
			}
			g := showcase.Build(st.data.Table, q)
			out := cmd.OutOrStdout()
			if st.format == formatJSON {
				return writeJSON(out, g)
			}
			title(out, fmt.Sprintf("%s: found %d products", st.data.Label(g.Source), g.Found))
			var lines [][]string
			for _, c := range g.Products {
				lines = append(lines, []string{
					string(c.Tier), c.ProductID, c.BrandName, c.ProductName,
					money(c.Price), num(c.Rating), intNum(c.Reviews),
				})
			}
			return writeTable(out, []string{"TIER", "ID", "BRAND", "NAME", "PRICE", "RATING", "REVIEWS"}, lines)
		},
	}
	cmd.Flags().StringVarP(&source, "source", "s", string(model.SourceA), "catalog to browse: A or B")
	cmd.Flags().StringSliceVar(&skin, "skin", nil, "selected skin types, e.g. --skin \"dry skin\"")
	cmd.Flags().StringSliceVar(&hair, "hair", nil, "selected hair types")
	cmd.Flags().Float64Var(&minPrice, "min-price", 0, "inclusive lower price bound")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "inclusive upper price bound")
	return cmd
}
