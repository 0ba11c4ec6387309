package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"vincit.fi/asset-viewer/api"
	"vincit.fi/asset-viewer/api/apitype"
	"vincit.fi/asset-viewer/backend"
	"vincit.fi/asset-viewer/common"
	"vincit.fi/asset-viewer/common/logger"
)

var errQuit = errors.New("quit")

type Ui struct {
	params   *common.Params
	brokers  *backend.Brokers
	stores   *backend.Stores
	services *backend.Services

	out     io.Writer
	outLock sync.Mutex

	albums   []*apitype.Album
	selected *apitype.AssetList
	session  api.ViewerController
}

func NewUi(params *common.Params, brokers *backend.Brokers, stores *backend.Stores, services *backend.Services, out io.Writer) *Ui {
	return &Ui{
		params:   params,
		brokers:  brokers,
		stores:   stores,
		services: services,
		out:      out,
		selected: apitype.NewAssetList(),
	}
}

// Init subscribes to the viewer topics. Updates are printed as they
// arrive so their order relative to command output is not fixed.
func (s *Ui) Init() error {
	broker := s.brokers.Broker
	subscriptions := map[api.Topic]interface{}{
		api.PreviewPageChanged:   s.onPageChanged,
		api.PreviewAssetReplaced: s.onAssetReplaced,
		api.SelectionUpdated:     s.onSelectionUpdated,
		api.SessionClosed:        s.onSessionClosed,
		api.ShowError:            s.onError,
	}
	for topic, fn := range subscriptions {
		if err := broker.Subscribe(topic, fn); err != nil {
			return err
		}
	}
	return nil
}

// Run reads commands until the input ends or quit is given.
func (s *Ui) Run(in io.Reader) error {
	albums, err := s.services.AssetSource.ScanAlbums()
	if err != nil {
		return fmt.Errorf("could not read albums: %w", err)
	}
	s.albums = albums
	s.printAlbums()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := s.handle(line); errors.Is(err, errQuit) {
			break
		} else if err != nil {
			s.printf("! %s\n", err)
		}
	}
	s.closeSession()
	return scanner.Err()
}

func (s *Ui) handle(line string) error {
	fields := strings.Fields(line)
	command, args := fields[0], fields[1:]
	logger.Trace.Printf("Command '%s' %v", command, args)

	switch command {
	case "albums":
		s.printAlbums()
		return nil
	case "open":
		index, err := intArg(args)
		if err != nil {
			return err
		}
		return s.openAlbum(index)
	case "quit":
		return errQuit
	}

	if s.session == nil {
		return fmt.Errorf("no open album, use 'open N'")
	}
	switch command {
	case "next":
		return s.session.RequestPageChange(s.session.Paging().CurrentIndex() + 1)
	case "prev":
		return s.session.RequestPageChange(s.session.Paging().CurrentIndex() - 1)
	case "goto":
		index, err := intArg(args)
		if err != nil {
			return err
		}
		return s.session.RequestPageChange(index)
	case "select":
		return s.toggleCurrent(false)
	case "unselect":
		return s.toggleCurrent(true)
	case "show":
		s.printCurrent()
		return nil
	case "done":
		s.closeSession()
		return nil
	default:
		return fmt.Errorf("unknown command '%s'", command)
	}
}

func (s *Ui) openAlbum(index int) error {
	if index < 0 || index >= len(s.albums) {
		return fmt.Errorf("no album %d", index)
	}
	s.closeSession()

	album := s.albums[index]
	options := &backend.SessionOptions{
		PreviewAssets:     album.Assets(),
		SelectedAssets:    s.selected,
		SelectPredicate:   onlyMedia,
		PredicateRequired: true,
	}
	session, err := backend.OpenViewerSession(s.params, s.brokers, s.stores, options)
	if err != nil {
		return err
	}
	s.session = session
	s.printf("Opened %s\n", s.localize(album))
	s.printCurrent()
	return nil
}

func (s *Ui) toggleCurrent(currentlySelected bool) error {
	current := s.session.Paging().Current()
	if current == nil {
		return fmt.Errorf("nothing on the page")
	}
	if s.session.Selection().Contains(current) == !currentlySelected {
		return nil
	}
	result, err := s.session.RequestSelectionChange(context.Background(), current, currentlySelected)
	if err != nil {
		return err
	}
	if result == apitype.SelectionRejected {
		s.printf("%s cannot be selected\n", renderAsset(current))
	}
	return nil
}

func (s *Ui) closeSession() {
	if s.session != nil {
		selected := s.session.Close()
		if !s.session.IsAliased() {
			s.selected = apitype.NewAssetList(selected...)
		}
		s.session = nil
	}
}

func (s *Ui) localize(album *apitype.Album) string {
	return s.services.Localizer.Localize(album.FolderName(), s.params.Locale())
}

func (s *Ui) printAlbums() {
	for i, album := range s.albums {
		s.printf("%d: %s (%d)\n", i, s.localize(album), album.Count())
	}
}

func (s *Ui) printCurrent() {
	paging := s.session.Paging()
	if paging.IsEmpty() {
		s.printf("Nothing to show\n")
		return
	}
	current := paging.Current()
	marker := " "
	if s.session.Selection().Contains(current) {
		marker = "*"
	}
	s.printf("%s [%d/%d] %s\n", marker, paging.CurrentIndex()+1, paging.Total(), renderAsset(current))
}

func (s *Ui) onPageChanged(command *api.PageChangedCommand) {
	if command.Index < 0 {
		s.printf("Nothing to show\n")
		return
	}
	s.printf("[%d/%d] %s\n", command.Index+1, command.Total, renderAsset(command.Asset))
}

func (s *Ui) onAssetReplaced(command *api.AssetReplacedCommand) {
	s.printf("Replaced %s with %s\n", renderAsset(command.OldAsset), renderAsset(command.NewAsset))
}

func (s *Ui) onSelectionUpdated(command *api.SelectionUpdatedCommand) {
	if maxCount := s.params.MaxCount(); maxCount > 0 {
		s.printf("Selected %d/%d\n", command.Count, maxCount)
	} else {
		s.printf("Selected %d\n", command.Count)
	}
}

func (s *Ui) onSessionClosed(command *api.SessionClosedCommand) {
	s.printf("Session closed with %d selected\n", len(command.Selected))
}

func (s *Ui) onError(command *api.ErrorCommand) {
	s.printf("! %s\n", command.Message)
}

func (s *Ui) printf(format string, a ...interface{}) {
	s.outLock.Lock()
	defer s.outLock.Unlock()
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func onlyMedia(_ context.Context, asset *apitype.Asset, currentlySelected bool) *bool {
	allowed := currentlySelected || asset.Type() != apitype.AssetOther
	return &allowed
}

func renderAsset(asset *apitype.Asset) string {
	switch asset.Type() {
	case apitype.AssetImage:
		return fmt.Sprintf("image %s", asset.Title())
	case apitype.AssetVideo:
		return fmt.Sprintf("video %s (%s)", asset.Title(), asset.Duration())
	case apitype.AssetAudio:
		return fmt.Sprintf("audio %s (%s)", asset.Title(), asset.Duration())
	case apitype.AssetOther:
		return fmt.Sprintf("file %s", asset.Title())
	default:
		return asset.String()
	}
}

func intArg(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected one number")
	}
	return strconv.Atoi(args[0])
}
