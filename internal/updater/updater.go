package updater

import (
	"archive/tar"
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/VibeCoder01/OneTap-Time/internal/version"
)

const githubAPIURL = "https://api.github.com/repos/%s/%s/releases/latest"

// githubRelease is the subset of the GitHub release payload we care about.
type githubRelease struct {
	TagName string `json:"tag_name"`
	Assets  []struct {
		Name               string `json:"name"`
		BrowserDownloadURL string `json:"browser_download_url"`
	} `json:"assets"`
}

// SelfUpdate checks the latest GitHub release and, if newer than the
// running build, downloads it and swaps the executable in place. Dev
// builds never update.
func SelfUpdate(owner, repo string) error {
	currentVersion := version.Version
	if currentVersion == "dev" {
		log.Println("Running a dev build, skipping update check")
		return nil
	}

	latestTag, downloadURL, err := checkForUpdate(owner, repo)
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}
	if latestTag == "" || downloadURL == "" {
		return nil
	}
	if compareVersions(currentVersion, latestTag) >= 0 {
		return nil
	}

	log.Printf("Updating %s -> %s", currentVersion, latestTag)

	executablePath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get executable path: %w", err)
	}
	if err := downloadAndReplace(downloadURL, executablePath); err != nil {
		return fmt.Errorf("failed to download and replace: %w", err)
	}

	log.Printf("Updated to %s, restart the application to use it", latestTag)
	return nil
}

// checkForUpdate returns the latest release tag and the download URL of the
// asset matching the current OS/arch, or empty strings if none fits.
func checkForUpdate(owner, repo string) (string, string, error) {
	url := fmt.Sprintf(githubAPIURL, owner, repo)
	resp, err := http.Get(url)
	if err != nil {
		return "", "", fmt.Errorf("failed to fetch release info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("GitHub API returned status %d: %s", resp.StatusCode, resp.Status)
	}

	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", "", fmt.Errorf("failed to decode release JSON: %w", err)
	}

	platform := fmt.Sprintf("%s-%s", runtime.GOOS, runtime.GOARCH)
	var suffix string
	switch runtime.GOOS {
	case "windows":
		suffix = platform + ".zip"
	case "linux":
		suffix = platform + ".tar.xz"
	default:
		return "", "", fmt.Errorf("self-update is not supported on %s/%s", runtime.GOOS, runtime.GOARCH)
	}

	for _, asset := range release.Assets {
		if strings.Contains(asset.Name, suffix) && strings.Contains(asset.Name, "onetap") {
			return release.TagName, asset.BrowserDownloadURL, nil
		}
	}
	return "", "", fmt.Errorf("no suitable asset found for %s/%s", runtime.GOOS, runtime.GOARCH)
}

func downloadAndReplace(downloadURL, executablePath string) error {
	tmpDir, err := os.MkdirTemp("", "onetap-update-")
	if err != nil {
		return fmt.Errorf("failed to create temporary directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	archiveName := filepath.Base(downloadURL)
	archivePath := filepath.Join(tmpDir, archiveName)

	resp, err := http.Get(downloadURL)
	if err != nil {
		return fmt.Errorf("failed to download update archive: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download archive, HTTP status: %d (%s)", resp.StatusCode, resp.Status)
	}

	outFile, err := os.Create(archivePath)
	if err != nil {
		return fmt.Errorf("failed to create temporary archive file: %w", err)
	}
	if _, err := io.Copy(outFile, resp.Body); err != nil {
		outFile.Close()
		return fmt.Errorf("failed to write download to temporary file: %w", err)
	}
	outFile.Close()

	var extracted string
	switch {
	case strings.HasSuffix(archiveName, ".tar.xz"):
		extracted, err = extractTarXz(archivePath, tmpDir, executablePath)
	case strings.HasSuffix(archiveName, ".zip"):
		extracted, err = extractZip(archivePath, tmpDir, executablePath)
	default:
		return fmt.Errorf("unsupported archive format: %s", archiveName)
	}
	if err != nil {
		return fmt.Errorf("failed to extract %s: %w", archiveName, err)
	}

	return replaceExecutable(executablePath, extracted)
}

// extractTarXz pulls the executable out of a .tar.xz archive.
func extractTarXz(archivePath, destDir, executablePath string) (string, error) {
	file, err := os.Open(archivePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	xzReader, err := xz.NewReader(file)
	if err != nil {
		return "", err
	}

	wantName := strings.TrimSuffix(filepath.Base(executablePath), ".exe")
	tarReader := tar.NewReader(xzReader)
	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if header.Typeflag != tar.TypeReg || filepath.Base(header.Name) != wantName {
			continue
		}

		newPath := filepath.Join(destDir, wantName)
		newFile, err := os.OpenFile(newPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, header.FileInfo().Mode())
		if err != nil {
			return "", err
		}
		if _, err := io.Copy(newFile, tarReader); err != nil {
			newFile.Close()
			return "", err
		}
		newFile.Close()
		return newPath, nil
	}
	return "", fmt.Errorf("executable %q not found in archive", wantName)
}

// extractZip pulls the executable out of a .zip archive.
func extractZip(archivePath, destDir, executablePath string) (string, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return "", err
	}
	defer r.Close()

	wantName := filepath.Base(executablePath)
	if runtime.GOOS == "windows" && !strings.HasSuffix(wantName, ".exe") {
		wantName += ".exe"
	}

	for _, f := range r.File {
		if filepath.Base(f.Name) != wantName {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}

		newPath := filepath.Join(destDir, wantName)
		newFile, err := os.OpenFile(newPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, f.Mode())
		if err != nil {
			rc.Close()
			return "", err
		}
		_, err = io.Copy(newFile, rc)
		rc.Close()
		newFile.Close()
		if err != nil {
			return "", err
		}
		return newPath, nil
	}
	return "", fmt.Errorf("executable %q not found in archive", wantName)
}

// replaceExecutable swaps the running binary for the new one, keeping an
// .old backup for rollback. On Windows the running executable may be locked,
// in which case the rename fails and the update has to wait for a restart.
func replaceExecutable(oldExecutablePath, newExecutablePath string) error {
	backupPath := oldExecutablePath + ".old"
	if err := os.Rename(oldExecutablePath, backupPath); err != nil {
		return fmt.Errorf("failed to rename current executable to backup: %w", err)
	}

	if err := os.Rename(newExecutablePath, oldExecutablePath); err != nil {
		_ = os.Rename(backupPath, oldExecutablePath) // best effort rollback
		return fmt.Errorf("failed to move new executable into place: %w", err)
	}

	if runtime.GOOS != "windows" {
		if err := os.Chmod(oldExecutablePath, 0755); err != nil {
			return fmt.Errorf("failed to set execute permissions: %w", err)
		}
		_ = os.Remove(backupPath)
	}
	// On Windows the .old file stays locked until the process exits and is
	// cleaned up on the next run.

	return nil
}

// compareVersions compares dotted version strings numerically after
// stripping any "v" prefix. Returns -1, 0 or 1.
func compareVersions(versionA, versionB string) int {
	aParts := strings.Split(strings.TrimPrefix(versionA, "v"), ".")
	bParts := strings.Split(strings.TrimPrefix(versionB, "v"), ".")

	maxParts := len(aParts)
	if len(bParts) > maxParts {
		maxParts = len(bParts)
	}

	for i := 0; i < maxParts; i++ {
		a, b := 0, 0
		if i < len(aParts) {
			a, _ = strconv.Atoi(aParts[i])
		}
		if i < len(bParts) {
			b, _ = strconv.Atoi(bParts[i])
		}
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
	}
	return 0
}
