package commands

import (
	"github.com/spf13/cobra"

	"github.com/anyproto/any-sign/signingservice"
	"github.com/anyproto/any-sign/util/crypto"
)

func algorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List supported algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range crypto.AlgorithmNames() {
				printLine(cmd, name)
			}
			return nil
		},
	}
}

func pubkeyCmd(opts *options) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "pubkey <private key>",
		Short: "Print the public key derived from a hex or WIF private key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, closeApp, err := opts.startService(cmd, func(c *signingservice.Config) {
				c.PrivateKey = args[0]
				c.StrictWIF = c.StrictWIF || strict
			})
			if err != nil {
				return err
			}
			defer closeApp()
			signer, err := s.Signer()
			if err != nil {
				return err
			}
			pubKey, err := signer.PublicKey()
			if err != nil {
				return err
			}
			printLine(cmd, pubKey.Hex())
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "verify WIF checksum and version")
	return cmd
}

func wifCmd() *cobra.Command {
	var (
		strict  bool
		network string
	)
	cmd := &cobra.Command{
		Use:   "wif <wif>",
		Short: "Print the hex private key encoded in a WIF string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var raw []byte
			if strict {
				net, err := signingservice.NetworkParams(network)
				if err != nil {
					return err
				}
				raw, err = crypto.DecodeWIFStrict(args[0], net)
				if err != nil {
					return err
				}
			} else if raw, err = crypto.DecodeWIF(args[0]); err != nil {
				return err
			}
			printLine(cmd, crypto.EncodeHex(raw))
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "verify WIF checksum and version")
	cmd.Flags().StringVar(&network, "network", "mainnet", "network for strict decoding: mainnet, testnet3, regtest, simnet")
	return cmd
}
