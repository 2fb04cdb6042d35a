package commands

import (
	"github.com/spf13/cobra"

	"github.com/anyproto/any-sign/signingservice"
	"github.com/anyproto/any-sign/util/crypto"
)

func messageBytes(msg string, isHex bool) ([]byte, error) {
	if isHex {
		return crypto.DecodeHex(msg)
	}
	return []byte(msg), nil
}

func signCmd(opts *options) *cobra.Command {
	var hexMessage bool
	cmd := &cobra.Command{
		Use:   "sign <private key> <message>",
		Short: "Sign a message and print the hex signature",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := messageBytes(args[1], hexMessage)
			if err != nil {
				return err
			}
			s, closeApp, err := opts.startService(cmd, func(c *signingservice.Config) {
				c.PrivateKey = args[0]
			})
			if err != nil {
				return err
			}
			defer closeApp()
			sig, err := s.Sign(msg)
			if err != nil {
				return err
			}
			printLine(cmd, sig)
			return nil
		},
	}
	cmd.Flags().BoolVar(&hexMessage, "hex-message", false, "message is hex encoded")
	return cmd
}

func verifyCmd(opts *options) *cobra.Command {
	var hexMessage bool
	cmd := &cobra.Command{
		Use:   "verify <public key> <signature> <message>",
		Short: "Verify a hex signature, exits with 1 when it does not match",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := messageBytes(args[2], hexMessage)
			if err != nil {
				return err
			}
			s, closeApp, err := opts.startService(cmd, func(c *signingservice.Config) {
				c.PrivateKey = ""
			})
			if err != nil {
				return err
			}
			defer closeApp()
			pubKey, err := crypto.DecodePublicKey(s.Algorithm().Name(), args[0])
			if err != nil {
				return err
			}
			ok, err := s.Verify(args[1], msg, pubKey)
			if err != nil {
				return err
			}
			printLine(cmd, ok)
			if !ok {
				return ErrSignatureMismatch
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&hexMessage, "hex-message", false, "message is hex encoded")
	return cmd
}
