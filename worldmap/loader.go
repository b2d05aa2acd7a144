package worldmap

import (
	"bufio"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/zarena/geom"
)

// File names expected inside a map directory.
const (
	mapFileName  = "map.png"
	dataFileName = "data.txt"
)

// Spawn-file grammar tokens.
const (
	playerSpawnPrefix = "playerSpawn:"
	zombieSection     = "zombieSpawns"
	robotSection      = "robotStations"
)

// Load reads a map directory: <dir>/map.png and <dir>/data.txt.
// Any decode or parse failure is a construction fault and returns an error;
// the caller treats it as fatal.
func Load(dir string) (*MapData, error) {
	imgFile, err := os.Open(filepath.Join(dir, mapFileName))
	if err != nil {
		return nil, errors.Wrap(err, "worldmap: open map raster")
	}
	defer imgFile.Close()

	img, err := png.Decode(imgFile)
	if err != nil {
		return nil, errors.Wrap(err, "worldmap: decode map raster")
	}

	dataFile, err := os.Open(filepath.Join(dir, dataFileName))
	if err != nil {
		return nil, errors.Wrap(err, "worldmap: open spawn file")
	}
	defer dataFile.Close()

	spawns, err := ParseSpawnFile(dataFile)
	if err != nil {
		return nil, err
	}

	return New(img, spawns)
}

// ParseSpawnFile parses the line-oriented spawn-point format:
//
//	playerSpawn: X,Y        sets the player spawn
//	zombieSpawns            opens the zombie section
//	robotStations           opens the robot section
//	<TAB>X,Y                appends to the currently open section
//
// Blank and whitespace-only lines are ignored. Anything else is
// ErrBadSpawnLine.
func ParseSpawnFile(r io.Reader) (SpawnTable, error) {
	var (
		table   SpawnTable
		section string
		lineNo  int
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, playerSpawnPrefix):
			p, err := parsePoint(strings.TrimPrefix(line, playerSpawnPrefix))
			if err != nil {
				return SpawnTable{}, errors.Wrapf(err, "line %d", lineNo)
			}
			table.Player = p
			section = ""
		case strings.TrimSpace(line) == zombieSection:
			section = zombieSection
		case strings.TrimSpace(line) == robotSection:
			section = robotSection
		case strings.HasPrefix(line, "\t"):
			p, err := parsePoint(strings.TrimPrefix(line, "\t"))
			if err != nil {
				return SpawnTable{}, errors.Wrapf(err, "line %d", lineNo)
			}
			switch section {
			case zombieSection:
				table.Zombies = append(table.Zombies, p)
			case robotSection:
				table.Stations = append(table.Stations, p)
			default:
				return SpawnTable{}, errors.Wrapf(ErrBadSpawnLine, "line %d: entry outside a section", lineNo)
			}
		default:
			return SpawnTable{}, errors.Wrapf(ErrBadSpawnLine, "line %d: %q", lineNo, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return SpawnTable{}, errors.Wrap(err, "worldmap: read spawn file")
	}

	return table, nil
}

// parsePoint parses a single "X,Y" entry, tolerating surrounding spaces.
func parsePoint(s string) (geom.Position, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return geom.Position{}, errors.Wrapf(ErrBadSpawnLine, "%q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geom.Position{}, errors.Wrapf(ErrBadSpawnLine, "%q", s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geom.Position{}, errors.Wrapf(ErrBadSpawnLine, "%q", s)
	}

	return geom.NewPosition(x, y), nil
}
