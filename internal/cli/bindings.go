package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/randalmurphal/textparser/pkg/textparser/bindings"
	"github.com/spf13/cobra"
)

const defaultStorePath = "textparse.db"

func newBindingsCommand() *cobra.Command {
	var sf storeFlags

	cmd := &cobra.Command{
		Use:   "bindings",
		Short: "Manage stored binding sets",
		Long: `Manage named binding sets in a SQLite file or Redis.

Stored sets can be used by render with --set.`,
	}
	sf.register(cmd, defaultStorePath)

	cmd.AddCommand(
		&cobra.Command{
			Use:   "put SET NAME VALUE",
			Short: "Bind NAME to VALUE in SET",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, closeStore, err := sf.open()
				if err != nil {
					return err
				}
				defer closeStore()
				return store.Save(cmd.Context(), args[0], args[1], args[2])
			},
		},
		&cobra.Command{
			Use:   "get SET NAME",
			Short: "Print the value bound to NAME in SET",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, closeStore, err := sf.open()
				if err != nil {
					return err
				}
				defer closeStore()

				v, err := store.Get(cmd.Context(), args[0], args[1])
				if errors.Is(err, bindings.ErrNotFound) {
					return fmt.Errorf("%s: no binding %q", args[0], args[1])
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			},
		},
		&cobra.Command{
			Use:   "list [SET]",
			Short: "List sets, or the bindings of one set",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, closeStore, err := sf.open()
				if err != nil {
					return err
				}
				defer closeStore()

				out := cmd.OutOrStdout()
				if len(args) == 0 {
					sets, err := store.Sets(cmd.Context())
					if err != nil {
						return err
					}
					for _, set := range sets {
						fmt.Fprintln(out, set)
					}
					return nil
				}

				b, err := store.Load(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				names := make([]string, 0, len(b))
				for name := range b {
					names = append(names, name)
				}
				sort.Strings(names)
				for _, name := range names {
					fmt.Fprintf(out, "%s=%s\n", name, b[name])
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "delete SET [NAME]",
			Short: "Delete one binding, or a whole set",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, closeStore, err := sf.open()
				if err != nil {
					return err
				}
				defer closeStore()

				if len(args) == 1 {
					return store.DeleteSet(cmd.Context(), args[0])
				}
				return store.Delete(cmd.Context(), args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "import SET FILE...",
			Short: "Copy bindings from YAML, JSON or dotenv files into SET",
			Long: `Copy bindings from YAML, JSON or dotenv files into SET.

Every file is read and parsed before the store is touched, so a bad file
writes nothing. Bindings are then saved one at a time: if the store fails
partway through, the bindings saved so far stay in SET.`,
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				b, err := bindings.LoadFiles(args[1:]...)
				if err != nil {
					return err
				}

				store, closeStore, err := sf.open()
				if err != nil {
					return err
				}
				defer closeStore()

				for name, value := range b {
					if err := store.Save(cmd.Context(), args[0], name, value); err != nil {
						return err
					}
				}
				newLogger(cmd).Debug("bindings imported", "set", args[0], "count", len(b))
				return nil
			},
		},
	)
	return cmd
}
