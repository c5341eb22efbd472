package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"staffing/internal/config"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

// Upload pushes the rendered report to the configured SFTP drop directory.
func Upload(ctx context.Context, cfg config.ExportConfig, fileName string, content []byte) error {
	if cfg.Host == "" || cfg.User == "" || cfg.Password == "" {
		return fmt.Errorf("sftp: missing SFTP_HOST / SFTP_USER / SFTP_PASS")
	}
	port := cfg.Port
	if port <= 0 {
		port = 22
	}
	remoteDir := cfg.RemoteDir
	if remoteDir == "" {
		remoteDir = "/"
	}

	sshCfg := &ssh.ClientConfig{
		User:            cfg.User,
		Auth:            []ssh.AuthMethod{ssh.Password(cfg.Password)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         20 * time.Second,
	}
	addr := fmt.Sprintf("%s:%d", cfg.Host, port)

	type dialRes struct {
		client *ssh.Client
		err    error
	}
	ch := make(chan dialRes, 1)
	go func() {
		c, err := ssh.Dial("tcp", addr, sshCfg)
		ch <- dialRes{client: c, err: err}
	}()

	var sshClient *ssh.Client
	select {
	case <-ctx.Done():
		return fmt.Errorf("sftp: dial canceled: %w", ctx.Err())
	case r := <-ch:
		if r.err != nil {
			return fmt.Errorf("sftp: dial error: %w", r.err)
		}
		sshClient = r.client
	}
	defer sshClient.Close()

	sftpCli, err := sftp.NewClient(sshClient)
	if err != nil {
		return fmt.Errorf("sftp: new client: %w", err)
	}
	defer sftpCli.Close()

	if err := sftpCli.MkdirAll(remoteDir); err != nil {
		return fmt.Errorf("sftp: mkdir %s: %w", remoteDir, err)
	}

	remotePath := path.Join(remoteDir, fileName)
	dst, err := sftpCli.Create(remotePath)
	if err != nil {
		return fmt.Errorf("sftp: create remote file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, bytes.NewReader(content)); err != nil {
		return fmt.Errorf("sftp: upload copy: %w", err)
	}
	return nil
}
