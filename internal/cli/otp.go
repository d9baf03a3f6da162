package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newOTPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "otp",
		Short: "OTP request and verification commands",
	}

	cmd.AddCommand(newOTPRequestCmd())
	cmd.AddCommand(newOTPVerifyCmd())

	return cmd
}

func newOTPRequestCmd() *cobra.Command {
	var phone string

	cmd := &cobra.Command{
		Use:   "request",
		Short: "Request an OTP to be sent to a phone number",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/otp?phoneNumber=" + url.QueryEscape(phone)

			msg, err := client.PostText(path)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&phone, "phone", "", "Phone number in E.164 form (required)")
	_ = cmd.MarkFlagRequired("phone")

	return cmd
}

func newOTPVerifyCmd() *cobra.Command {
	var phone, code string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify an OTP and save the resulting token",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/otp?phoneNumber=" + url.QueryEscape(phone) + "&otp=" + url.QueryEscape(code)

			msg, err := client.PostText(path)
			if err != nil {
				return err
			}

			// A verified pair is the auth token for the scores endpoints
			token := phone + ":" + code
			if err := cfg.SaveToken(token); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}
			client.SetToken(token)

			out := NewOutput(cfg.Output)
			out.PrintMessage(msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&phone, "phone", "", "Phone number in E.164 form (required)")
	cmd.Flags().StringVar(&code, "code", "", "OTP code received by SMS (required)")
	_ = cmd.MarkFlagRequired("phone")
	_ = cmd.MarkFlagRequired("code")

	return cmd
}
